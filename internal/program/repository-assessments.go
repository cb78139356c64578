package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahelminen/trainweek/internal/contexthelpers"
	"github.com/ahelminen/trainweek/internal/sqlite"
)

// sqliteAssessmentRepository stores the latest movement assessment per user.
type sqliteAssessmentRepository struct {
	baseRepository
}

func newSQLiteAssessmentRepository(db *sqlite.Database, logger *slog.Logger) *sqliteAssessmentRepository {
	return &sqliteAssessmentRepository{baseRepository: newBaseRepository(db, logger)}
}

// Get retrieves the assessment for the authenticated user. A missing row is
// not an error; generation falls back to the declared experience level.
func (r *sqliteAssessmentRepository) Get(ctx context.Context) (Assessment, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var (
		assessment   Assessment
		pushUps      sql.NullInt64
		pullUps      sql.NullInt64
		squats       sql.NullInt64
		plank        sql.NullInt64
		deadHang     sql.NullInt64
		squatOneRM   sql.NullFloat64
		deadliftRM   sql.NullFloat64
		benchOneRM   sql.NullFloat64
		pressOneRM   sql.NullFloat64
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT push_ups, pull_ups, bodyweight_squats, plank_seconds, dead_hang_seconds,
		       squat_one_rm_kg, deadlift_one_rm_kg, bench_one_rm_kg, press_one_rm_kg
		FROM assessments
		WHERE user_id = ?`, userID).Scan(
		&pushUps, &pullUps, &squats, &plank, &deadHang,
		&squatOneRM, &deadliftRM, &benchOneRM, &pressOneRM,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Assessment{}, nil
	}
	if err != nil {
		return Assessment{}, fmt.Errorf("query assessment: %w", err)
	}

	assessment.PushUps = nullableInt(pushUps)
	assessment.PullUps = nullableInt(pullUps)
	assessment.BodyweightSquats = nullableInt(squats)
	assessment.PlankSeconds = nullableInt(plank)
	assessment.DeadHangSeconds = nullableInt(deadHang)
	assessment.SquatOneRMKg = nullableFloat(squatOneRM)
	assessment.DeadliftOneRMKg = nullableFloat(deadliftRM)
	assessment.BenchOneRMKg = nullableFloat(benchOneRM)
	assessment.PressOneRMKg = nullableFloat(pressOneRM)

	return assessment, nil
}

// Set upserts the assessment for the authenticated user.
func (r *sqliteAssessmentRepository) Set(ctx context.Context, assessment Assessment) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO assessments (
			user_id, push_ups, pull_ups, bodyweight_squats, plank_seconds, dead_hang_seconds,
			squat_one_rm_kg, deadlift_one_rm_kg, bench_one_rm_kg, press_one_rm_kg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			push_ups = excluded.push_ups,
			pull_ups = excluded.pull_ups,
			bodyweight_squats = excluded.bodyweight_squats,
			plank_seconds = excluded.plank_seconds,
			dead_hang_seconds = excluded.dead_hang_seconds,
			squat_one_rm_kg = excluded.squat_one_rm_kg,
			deadlift_one_rm_kg = excluded.deadlift_one_rm_kg,
			bench_one_rm_kg = excluded.bench_one_rm_kg,
			press_one_rm_kg = excluded.press_one_rm_kg`,
		userID,
		assessment.PushUps, assessment.PullUps, assessment.BodyweightSquats,
		assessment.PlankSeconds, assessment.DeadHangSeconds,
		assessment.SquatOneRMKg, assessment.DeadliftOneRMKg,
		assessment.BenchOneRMKg, assessment.PressOneRMKg,
	)
	if err != nil {
		return fmt.Errorf("upsert assessment: %w", err)
	}
	return nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
