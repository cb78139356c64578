package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahelminen/trainweek/internal/contexthelpers"
	"github.com/ahelminen/trainweek/internal/sqlite"
	"github.com/google/uuid"
)

const dateFormat = time.DateOnly

// sqliteProgramRepository persists generated programs.
type sqliteProgramRepository struct {
	baseRepository
}

func newSQLiteProgramRepository(db *sqlite.Database, logger *slog.Logger) *sqliteProgramRepository {
	return &sqliteProgramRepository{baseRepository: newBaseRepository(db, logger)}
}

// Create stores a generated program with all its workouts and prescriptions.
func (r *sqliteProgramRepository) Create(ctx context.Context, program GeneratedProgram) (err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", rollbackErr))
		}
	}(tx)

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO programs (id, user_id, template_name, duration_weeks, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		program.ID.String(), userID, program.TemplateName, program.DurationWeeks, createdAt)
	if err != nil {
		return fmt.Errorf("insert program: %w", err)
	}

	for _, workout := range program.Workouts {
		var workoutDate any
		if workout.Date != nil {
			workoutDate = workout.Date.Format(dateFormat)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO program_workouts (program_id, day, name, type, workout_date)
			VALUES (?, ?, ?, ?, ?)`,
			program.ID.String(), workout.Day, workout.Name, string(workout.Type), workoutDate)
		if err != nil {
			return fmt.Errorf("insert program workout %d: %w", workout.Day, err)
		}

		for position, exercise := range workout.Exercises {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO program_exercises (
					program_id, day, position, exercise_name, equipment,
					sets, min_reps, max_reps, duration_seconds, rest_seconds,
					target_rpe, target_rir, tempo, weight_kg, superset_group, superset_order
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				program.ID.String(), workout.Day, position,
				exercise.Name, exercise.Equipment,
				exercise.Sets, exercise.MinReps, exercise.MaxReps,
				exercise.DurationSeconds, exercise.RestSeconds,
				exercise.TargetRPE, exercise.TargetRIR, exercise.Tempo,
				exercise.WeightKg, exercise.SupersetGroup, exercise.SupersetOrder)
			if err != nil {
				return fmt.Errorf("insert program exercise %q: %w", exercise.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetLatest returns the most recently created program for the user.
func (r *sqliteProgramRepository) GetLatest(ctx context.Context) (GeneratedProgram, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var (
		idStr   string
		program GeneratedProgram
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, template_name, duration_weeks
		FROM programs
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, userID).Scan(&idStr, &program.TemplateName, &program.DurationWeeks)
	if errors.Is(err, sql.ErrNoRows) {
		return GeneratedProgram{}, fmt.Errorf("program for user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return GeneratedProgram{}, fmt.Errorf("query latest program: %w", err)
	}

	if program.ID, err = uuid.Parse(idStr); err != nil {
		return GeneratedProgram{}, fmt.Errorf("parse program id: %w", err)
	}

	workouts, err := r.loadWorkouts(ctx, idStr)
	if err != nil {
		return GeneratedProgram{}, err
	}
	program.Workouts = workouts

	return program, nil
}

func (r *sqliteProgramRepository) loadWorkouts(ctx context.Context, programID string) (_ []GeneratedWorkout, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT day, name, type, workout_date
		FROM program_workouts
		WHERE program_id = ?
		ORDER BY day`, programID)
	if err != nil {
		return nil, fmt.Errorf("query program workouts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var workouts []GeneratedWorkout
	for rows.Next() {
		var (
			workout GeneratedWorkout
			dateStr sql.NullString
		)
		if err = rows.Scan(&workout.Day, &workout.Name, &workout.Type, &dateStr); err != nil {
			return nil, fmt.Errorf("scan program workout: %w", err)
		}
		if dateStr.Valid {
			var date time.Time
			if date, err = time.Parse(dateFormat, dateStr.String); err != nil {
				return nil, fmt.Errorf("parse workout date: %w", err)
			}
			workout.Date = &date
		}
		workouts = append(workouts, workout)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range workouts {
		var exercises []GeneratedExercise
		if exercises, err = r.loadExercises(ctx, programID, workouts[i].Day); err != nil {
			return nil, err
		}
		workouts[i].Exercises = exercises
	}

	return workouts, nil
}

func (r *sqliteProgramRepository) loadExercises(
	ctx context.Context,
	programID string,
	day int,
) (_ []GeneratedExercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_name, equipment, sets, min_reps, max_reps, duration_seconds,
		       rest_seconds, target_rpe, target_rir, tempo, weight_kg, superset_group, superset_order
		FROM program_exercises
		WHERE program_id = ? AND day = ?
		ORDER BY position`, programID, day)
	if err != nil {
		return nil, fmt.Errorf("query program exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exercises []GeneratedExercise
	for rows.Next() {
		var (
			exercise      GeneratedExercise
			targetRPE     sql.NullInt64
			targetRIR     sql.NullInt64
			weightKg      sql.NullFloat64
			supersetGroup sql.NullInt64
		)
		if err = rows.Scan(
			&exercise.Name, &exercise.Equipment, &exercise.Sets,
			&exercise.MinReps, &exercise.MaxReps, &exercise.DurationSeconds,
			&exercise.RestSeconds, &targetRPE, &targetRIR, &exercise.Tempo,
			&weightKg, &supersetGroup, &exercise.SupersetOrder,
		); err != nil {
			return nil, fmt.Errorf("scan program exercise: %w", err)
		}
		exercise.TargetRPE = nullableInt(targetRPE)
		exercise.TargetRIR = nullableInt(targetRIR)
		exercise.WeightKg = nullableFloat(weightKg)
		exercise.SupersetGroup = nullableInt(supersetGroup)
		exercises = append(exercises, exercise)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return exercises, nil
}
