package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ahelminen/trainweek/internal/e2etest"
	"github.com/ahelminen/trainweek/internal/logging"
	"github.com/ahelminen/trainweek/internal/testhelpers"
)

// TestProgramFlow walks the happy path of an anonymous visitor: save a
// training profile, generate a program, and open the program view.
func TestProgramFlow(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	doc, err := client.GetDoc(ctx, "/profile")
	if err != nil {
		return fmt.Errorf("get profile page: %w", err)
	}
	doc, err = client.SubmitForm(ctx, doc, "/profile", map[string]string{
		"Experience":     "beginner",
		"Goal":           "maintain",
		"Session length": "45",
		"Days per week":  "3",
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	if doc, err = client.SubmitForm(ctx, doc, "/program/generate", nil); err != nil {
		return fmt.Errorf("generate program: %w", err)
	}
	if doc.Find("section.workout").Length() == 0 {
		return fmt.Errorf("program view has no workouts")
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestProgramFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing program flow", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
