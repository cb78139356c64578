package main

import (
	"errors"
	"net/http"

	"github.com/ahelminen/trainweek/internal/program"
)

// exerciseInfoTemplateData contains data for the exercise info template.
type exerciseInfoTemplateData struct {
	BaseTemplateData
	Exercise program.Exercise
}

// exerciseInfoGET handles GET requests to view exercise information.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := app.parseExerciseIDParam(w, r)
	if !ok {
		return
	}

	exercise, err := app.programService.GetExercise(r.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, program.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	data := exerciseInfoTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Exercise:         exercise,
	}

	app.render(w, r, http.StatusOK, "exercise-info", data)
}
