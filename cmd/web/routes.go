package main

import (
	"fmt"
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		noAuth = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				shared(app.authenticateSession(next)))))
		}
	)

	mux.Handle("GET /profile", session(http.HandlerFunc(app.profileGET)))
	mux.Handle("POST /profile", session(http.HandlerFunc(app.profilePOST)))
	mux.Handle("GET /profile/export-data", session(http.HandlerFunc(app.exportUserDataGET)))
	mux.Handle("POST /profile/delete-user", session(http.HandlerFunc(app.deleteUserPOST)))

	mux.Handle("GET /assessment", session(http.HandlerFunc(app.assessmentGET)))
	mux.Handle("POST /assessment", session(http.HandlerFunc(app.assessmentPOST)))

	mux.Handle("GET /program", session(http.HandlerFunc(app.programGET)))
	mux.Handle("POST /program/generate", session(http.HandlerFunc(app.programGeneratePOST)))

	mux.Handle("GET /exercises/{exerciseID}", session(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("GET /api/healthy", noAuth(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/test/timeout", noAuth(http.HandlerFunc(app.testTimeout)))

	// Privacy page
	mux.Handle("GET /privacy", session(http.HandlerFunc(app.privacy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// File server with custom 404 handling
	fileServerHandler, err := app.fileServerHandler()
	if err != nil {
		return nil, fmt.Errorf("fileServerHandler: %w", err)
	}
	mux.Handle("/", fileServerHandler)

	return mux, nil
}
