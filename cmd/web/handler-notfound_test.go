package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ahelminen/trainweek/internal/e2etest"
	"github.com/ahelminen/trainweek/internal/testhelpers"
)

func Test_application_notFound(t *testing.T) {
	ctx := t.Context()

	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	resp, err := client.Get(ctx, "/does-not-exist")
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	t.Run("Unknown exercise returns not found", func(t *testing.T) {
		var exerciseResp *http.Response
		if exerciseResp, err = client.Get(ctx, "/exercises/999999"); err != nil {
			t.Fatalf("Failed to get exercise page: %v", err)
		}
		defer func() {
			_ = exerciseResp.Body.Close()
		}()

		if exerciseResp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, exerciseResp.StatusCode)
		}
	})

	t.Run("Malformed exercise ID returns not found", func(t *testing.T) {
		var exerciseResp *http.Response
		if exerciseResp, err = client.Get(ctx, "/exercises/squat"); err != nil {
			t.Fatalf("Failed to get exercise page: %v", err)
		}
		defer func() {
			_ = exerciseResp.Body.Close()
		}()

		if exerciseResp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, exerciseResp.StatusCode)
		}

		if !strings.Contains(exerciseResp.Header.Get("Content-Type"), "text/plain") {
			// http.NotFound writes a plain text body.
			t.Errorf("Expected plain text response, got %q", exerciseResp.Header.Get("Content-Type"))
		}
	})
}
