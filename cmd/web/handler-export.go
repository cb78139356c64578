package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

func (app *application) exportUserDataGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Create the user database export
	exportPath, err := app.programService.ExportData(ctx)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("export user data: %w", err))
		return
	}

	// Clean up the temporary file when done
	defer func() {
		if removeErr := os.Remove(exportPath); removeErr != nil {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "failed to remove temporary export file",
				slog.String("path", exportPath), slog.Any("error", removeErr))
		}
	}()

	// Open the file for reading
	file, err := os.Open(exportPath)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("open export file: %w", err))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "failed to close export file",
				slog.String("path", exportPath), slog.Any("error", closeErr))
		}
	}()

	// Set headers for file download
	filename := filepath.Base(exportPath)
	w.Header().Set("Content-Type", "application/x-sqlite3")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

	// Stream the file to the client
	_, err = io.Copy(w, file)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "failed to stream export file to client",
			slog.String("path", exportPath), slog.Any("error", err))
		return
	}
}

func (app *application) deleteUserPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Delete the user and all their data
	if err := app.programService.DeleteUser(ctx); err != nil {
		app.serverError(w, r, fmt.Errorf("delete user: %w", err))
		return
	}

	// Drop the session so the next page load starts a fresh anonymous user.
	if err := app.sessionManager.Destroy(ctx); err != nil {
		app.serverError(w, r, fmt.Errorf("destroy session after user deletion: %w", err))
		return
	}

	redirect(w, r, "/")
}
