package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ahelminen/trainweek/internal/program"
)

type assessmentTemplateData struct {
	BaseTemplateData
	Assessment program.Assessment
}

func (app *application) assessmentGET(w http.ResponseWriter, r *http.Request) {
	assessment, err := app.programService.Assessment(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("get assessment: %w", err))
		return
	}

	data := assessmentTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Assessment:       assessment,
	}

	app.render(w, r, http.StatusOK, "assessment", data)
}

// parseOptionalInt returns nil for empty or malformed values so that skipped
// assessment fields stay unset.
func parseOptionalInt(value string) *int {
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return nil
	}
	return &parsed
}

func parseOptionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return nil
	}
	return &parsed
}

func assessmentFromForm(r *http.Request) program.Assessment {
	return program.Assessment{
		PushUps:          parseOptionalInt(r.Form.Get("push_ups")),
		PullUps:          parseOptionalInt(r.Form.Get("pull_ups")),
		BodyweightSquats: parseOptionalInt(r.Form.Get("bodyweight_squats")),
		PlankSeconds:     parseOptionalInt(r.Form.Get("plank_seconds")),
		DeadHangSeconds:  parseOptionalInt(r.Form.Get("dead_hang_seconds")),
		SquatOneRMKg:     parseOptionalFloat(r.Form.Get("squat_one_rm_kg")),
		DeadliftOneRMKg:  parseOptionalFloat(r.Form.Get("deadlift_one_rm_kg")),
		BenchOneRMKg:     parseOptionalFloat(r.Form.Get("bench_one_rm_kg")),
		PressOneRMKg:     parseOptionalFloat(r.Form.Get("press_one_rm_kg")),
	}
}

func (app *application) assessmentPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	assessment := assessmentFromForm(r)

	if err := app.programService.SaveAssessment(r.Context(), assessment); err != nil {
		app.serverError(w, r, fmt.Errorf("save assessment: %w", err))
		return
	}

	redirect(w, r, "/")
}
