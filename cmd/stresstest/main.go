// Command stresstest exercises a running server with concurrent anonymous
// users. Each user saves a profile, generates a program, and browses the
// generated pages. The test fails when the success rate drops below the
// threshold.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ahelminen/trainweek/internal/e2etest"
	"github.com/ahelminen/trainweek/internal/logging"
	"github.com/ahelminen/trainweek/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	numUsers                = 25
	maxConcurrentSetups     = 10
	maxConcurrentOperations = 20
	setupTimeout            = 30 * time.Second
	scenarioTimeout         = 30 * time.Second
	successRateThreshold    = 95.0
	percentageMultiplier    = 100
	expectedArgsCount       = 2
)

// user holds one anonymous session. The cookie jar carries the session, so a
// fresh client is a fresh user.
type user struct {
	client *e2etest.Client
	index  int
}

var goals = []string{"gain", "maintain", "lose"} //nolint:gochecknoglobals // scenario rotation.

var frequencies = []string{"3", "4", "5"} //nolint:gochecknoglobals // scenario rotation.

// setupUser registers a user implicitly by saving a training profile.
func setupUser(ctx context.Context, url string, index int) (*user, error) {
	client, err := e2etest.NewClient(url)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	doc, err := client.GetDoc(ctx, "/profile")
	if err != nil {
		return nil, fmt.Errorf("get profile page: %w", err)
	}
	if _, err = client.SubmitForm(ctx, doc, "/profile", map[string]string{
		"Experience":     "intermediate",
		"Goal":           goals[index%len(goals)],
		"Session length": "60",
		"Days per week":  frequencies[index%len(frequencies)],
	}); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return &user{client: client, index: index}, nil
}

// setupUsers creates the anonymous users with bounded concurrency.
func setupUsers(ctx context.Context, url string, count int, logger *slog.Logger) ([]*user, error) {
	users := make([]*user, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSetups)
	for i := range count {
		g.Go(func() error {
			setupCtx, cancel := context.WithTimeout(ctx, setupTimeout)
			defer cancel()

			u, err := setupUser(setupCtx, url, i)
			if err != nil {
				return fmt.Errorf("setup user %d: %w", i, err)
			}
			users[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "user setup completed", slog.Int("users", count))
	return users, nil
}

// programScenario generates a program and browses the pages a real user would
// open afterwards.
func programScenario(ctx context.Context, u *user, logger *slog.Logger) error {
	home, err := u.client.GetDoc(ctx, "/")
	if err != nil {
		return fmt.Errorf("get home page: %w", err)
	}

	doc, err := u.client.SubmitForm(ctx, home, "/program/generate", nil)
	if err != nil {
		return fmt.Errorf("generate program: %w", err)
	}
	if doc.Find("section.workout").Length() == 0 {
		return fmt.Errorf("program view has no workouts")
	}

	// Open the first exercise info page linked from the program.
	if href, ok := doc.Find("section.workout a[href^='/exercises/']").First().Attr("href"); ok {
		resp, err := u.client.Get(ctx, href)
		if err != nil {
			return fmt.Errorf("get exercise info %s: %w", href, err)
		}
		_ = resp.Body.Close()
	}

	// Regenerating must succeed and is the heaviest endpoint we have.
	if home, err = u.client.GetDoc(ctx, "/"); err != nil {
		return fmt.Errorf("get home page again: %w", err)
	}
	if _, err = u.client.SubmitForm(ctx, home, "/program/generate", nil); err != nil {
		return fmt.Errorf("regenerate program: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "scenario completed", slog.Int("user", u.index))
	return nil
}

// runLoadTest fires all scenarios with bounded concurrency and reports the
// success rate.
func runLoadTest(ctx context.Context, users []*user, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "starting load test", slog.Int("num_users", len(users)))

	var successCount, failureCount int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)
	for _, u := range users {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			if err := programScenario(scenarioCtx, u, logger); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures without stopping the other scenarios.
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "scenario failed",
					slog.Int("user", u.index),
					slog.Any("error", err))
				return nil
			}
			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(len(users)) * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "load test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("success rate %.1f%% below threshold %s%%",
			successRate, strconv.FormatFloat(successRateThreshold, 'f', -1, 64))
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	client, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	users, err := setupUsers(ctx, url, numUsers, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failed to setup users", slog.Any("error", err))
		os.Exit(1)
	}

	if err = runLoadTest(ctx, users, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)),
		slog.Int("users_tested", len(users)))
}
