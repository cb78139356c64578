package main

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/ahelminen/trainweek/internal/program"
)

const (
	defaultSessionMinutes = 45
	defaultDaysPerWeek    = 3
)

// equipmentOptions lists the equipment the profile form offers. Bodyweight is
// always available and not listed.
var equipmentOptions = []string{ //nolint:gochecknoglobals // immutable form options.
	"dumbbells",
	"barbell",
	"kettlebell",
	"pull-up bar",
	"dip bars",
	"cable machine",
	"leg machine",
	"resistance band",
	"medicine ball",
	"box",
	"ab wheel",
	"rowing machine",
	"stationary bike",
	"jump rope",
	"treadmill",
}

type equipmentOption struct {
	Name    string
	Checked bool
}

type intOption struct {
	Value    int
	Selected bool
}

type profileTemplateData struct {
	BaseTemplateData
	Experience     program.Level
	Goal           program.Goal
	Equipment      []equipmentOption
	SessionOptions []intOption
	DayOptions     []intOption
	ErrorMessage   string
}

func (app *application) profileTemplateData(r *http.Request, profile program.Profile) profileTemplateData {
	equipment := make([]equipmentOption, len(equipmentOptions))
	for i, name := range equipmentOptions {
		equipment[i] = equipmentOption{
			Name:    name,
			Checked: slices.Contains(profile.Equipment, name),
		}
	}
	sessionOptions := []int{30, 45, 60, 75, 90}
	sessions := make([]intOption, len(sessionOptions))
	for i, minutes := range sessionOptions {
		sessions[i] = intOption{Value: minutes, Selected: minutes == profile.SessionMinutes}
	}
	dayOptions := []int{3, 4, 5}
	days := make([]intOption, len(dayOptions))
	for i, count := range dayOptions {
		days[i] = intOption{Value: count, Selected: count == profile.DaysPerWeek}
	}
	return profileTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Experience:       profile.Experience,
		Goal:             profile.Goal,
		Equipment:        equipment,
		SessionOptions:   sessions,
		DayOptions:       days,
		ErrorMessage:     "",
	}
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.programService.Profile(r.Context())
	if errors.Is(err, program.ErrNotFound) {
		profile = program.Profile{
			Equipment:      nil,
			Experience:     program.LevelBeginner,
			Goal:           program.GoalMaintain,
			Unit:           "kg",
			SessionMinutes: defaultSessionMinutes,
			DaysPerWeek:    defaultDaysPerWeek,
			Dates:          nil,
		}
	} else if err != nil {
		app.serverError(w, r, fmt.Errorf("get profile: %w", err))
		return
	}

	app.render(w, r, http.StatusOK, "profile", app.profileTemplateData(r, profile))
}

func profileFromForm(r *http.Request) program.Profile {
	sessionMinutes, _ := strconv.Atoi(r.Form.Get("session_minutes"))
	daysPerWeek, _ := strconv.Atoi(r.Form.Get("days_per_week"))
	return program.Profile{
		Equipment:      r.Form["equipment"],
		Experience:     program.Level(r.Form.Get("experience")),
		Goal:           program.Goal(r.Form.Get("goal")),
		Unit:           "kg",
		SessionMinutes: sessionMinutes,
		DaysPerWeek:    daysPerWeek,
		Dates:          nil,
	}
}

func (app *application) profilePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	profile := profileFromForm(r)

	if err := app.programService.SaveProfile(r.Context(), profile); err != nil {
		if errors.Is(err, program.ErrInvalidProfile) {
			data := app.profileTemplateData(r, profile)
			data.ErrorMessage = "Please check the highlighted fields and try again."
			app.render(w, r, http.StatusUnprocessableEntity, "profile", data)
			return
		}
		app.serverError(w, r, fmt.Errorf("save profile: %w", err))
		return
	}

	redirect(w, r, "/")
}
