package main

import (
	"errors"
	"net/http"

	"github.com/ahelminen/trainweek/internal/program"
)

type homeTemplateData struct {
	BaseTemplateData
	// HasProfile tells whether the user has saved a training profile yet.
	HasProfile bool
	// Profile is the saved training profile, valid when HasProfile is true.
	Profile program.Profile
	// Program is the latest generated program, nil when none exists.
	Program *program.GeneratedProgram
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		HasProfile:       false,
		Profile:          program.Profile{},
		Program:          nil,
	}

	profile, err := app.programService.Profile(ctx)
	switch {
	case err == nil:
		data.HasProfile = true
		data.Profile = profile
	case errors.Is(err, program.ErrNotFound):
		// First visit, show the onboarding call to action.
	default:
		app.serverError(w, r, err)
		return
	}

	latest, err := app.programService.LatestProgram(ctx)
	switch {
	case err == nil:
		data.Program = &latest
	case errors.Is(err, program.ErrNotFound):
	default:
		app.serverError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "home", data)
}
