package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ahelminen/trainweek/internal/program"
)

type programExerciseView struct {
	program.GeneratedExercise
	// ExerciseID links back to the catalog entry, 0 when the exercise has
	// since been removed from the catalog.
	ExerciseID int
}

type programWorkoutView struct {
	Day       int
	Name      string
	Type      program.WorkoutType
	Date      *time.Time
	Exercises []programExerciseView
}

type programTemplateData struct {
	BaseTemplateData
	TemplateName  string
	DurationWeeks int
	Workouts      []programWorkoutView
}

func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	latest, err := app.programService.LatestProgram(ctx)
	if errors.Is(err, program.ErrNotFound) {
		redirect(w, r, "/")
		return
	}
	if err != nil {
		app.serverError(w, r, fmt.Errorf("get latest program: %w", err))
		return
	}

	catalog, err := app.programService.ListExercises(ctx)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("list exercises: %w", err))
		return
	}
	idsByName := make(map[string]int, len(catalog))
	for _, exercise := range catalog {
		idsByName[exercise.Name] = exercise.ID
	}

	workouts := make([]programWorkoutView, len(latest.Workouts))
	for i, workout := range latest.Workouts {
		exercises := make([]programExerciseView, len(workout.Exercises))
		for j, exercise := range workout.Exercises {
			exercises[j] = programExerciseView{
				GeneratedExercise: exercise,
				ExerciseID:        idsByName[exercise.Name],
			}
		}
		workouts[i] = programWorkoutView{
			Day:       workout.Day,
			Name:      workout.Name,
			Type:      workout.Type,
			Date:      workout.Date,
			Exercises: exercises,
		}
	}

	data := programTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		TemplateName:     latest.TemplateName,
		DurationWeeks:    latest.DurationWeeks,
		Workouts:         workouts,
	}

	app.render(w, r, http.StatusOK, "program", data)
}

func (app *application) programGeneratePOST(w http.ResponseWriter, r *http.Request) {
	if _, err := app.programService.GenerateProgram(r.Context()); err != nil {
		if errors.Is(err, program.ErrNotFound) {
			// No profile saved yet, send the user to fill one in.
			redirect(w, r, "/profile")
			return
		}
		app.serverError(w, r, fmt.Errorf("generate program: %w", err))
		return
	}

	redirect(w, r, "/program")
}
