package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ahelminen/trainweek/internal/e2etest"
	"github.com/ahelminen/trainweek/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "TRAINWEEK_SQLITE_URL":
		return ":memory:", true
	case "TRAINWEEK_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

// saveTestProfile fills in and submits the profile form with sensible values.
func saveTestProfile(t *testing.T, client *e2etest.Client) *goquery.Document {
	t.Helper()
	ctx := t.Context()

	doc, err := client.GetDoc(ctx, "/profile")
	if err != nil {
		t.Fatalf("Failed to get profile page: %v", err)
	}

	doc, err = client.SubmitForm(ctx, doc, "/profile", map[string]string{
		"Experience":     "intermediate",
		"Goal":           "gain",
		"Session length": "60",
		"Days per week":  "4",
		"dumbbells":      "dumbbells",
		"barbell":        "barbell",
		"pull-up bar":    "pull-up bar",
	})
	if err != nil {
		t.Fatalf("Failed to submit profile form: %v", err)
	}
	return doc
}

func Test_application_home(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Initial state", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find("a:contains('Set up profile')").Length(); got != 1 {
			t.Errorf("Expected 1 'Set up profile' link, found %d", got)
		}
		if got := doc.Find("button:contains('Generate program')").Length(); got != 0 {
			t.Errorf("Expected no 'Generate program' button before profile exists, found %d", got)
		}
	})

	t.Run("After saving profile", func(t *testing.T) {
		doc = saveTestProfile(t, client)

		if got := doc.Find("button:contains('Generate program')").Length(); got != 1 {
			t.Errorf("Expected 1 'Generate program' button, found %d", got)
		}
		if text := doc.Find(".profile-summary").Text(); !strings.Contains(text, "4 days a week") {
			t.Errorf("Expected profile summary to mention '4 days a week', got: %q", text)
		}
	})

	t.Run("Session persists across requests", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find("button:contains('Generate program')").Length(); got != 1 {
			t.Errorf("Expected saved profile to persist, 'Generate program' buttons found: %d", got)
		}
	})
}

func Test_crossOriginProtection(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	// Create a malicious client that simulates cross-origin requests
	maliciousClient, err := e2etest.NewClientWithSecFetchSite(server.URL(), "cross-site")
	if err != nil {
		t.Fatalf("Failed to create malicious client: %v", err)
	}

	doc, err := maliciousClient.GetDoc(ctx, "/profile")
	if err != nil {
		t.Fatalf("Failed to get profile page: %v", err)
	}

	// Submitting the profile form cross-origin should be blocked.
	_, err = maliciousClient.SubmitForm(ctx, doc, "/profile", map[string]string{
		"Experience": "beginner",
	})
	if err == nil {
		t.Error("Expected cross-origin form submission to be blocked, but it succeeded")
	}

	if !strings.Contains(err.Error(), "status code: 403") {
		t.Errorf("Expected status error 403 for blocked request, got: %v", err)
	}
}
