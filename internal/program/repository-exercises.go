package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahelminen/trainweek/internal/sqlite"
)

// sqliteExerciseRepository reads the exercise catalog.
type sqliteExerciseRepository struct {
	baseRepository
}

func newSQLiteExerciseRepository(db *sqlite.Database, logger *slog.Logger) *sqliteExerciseRepository {
	return &sqliteExerciseRepository{baseRepository: newBaseRepository(db, logger)}
}

// Get retrieves a single catalog exercise by ID.
func (r *sqliteExerciseRepository) Get(ctx context.Context, id int) (Exercise, error) {
	var exercise Exercise

	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, pattern, category, difficulty, tracking, tempo, description_markdown
		FROM exercises
		WHERE id = ?`, id).Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.Pattern,
		&exercise.Category,
		&exercise.Difficulty,
		&exercise.Tracking,
		&exercise.Tempo,
		&exercise.DescriptionMarkdown,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Exercise{}, fmt.Errorf("exercise %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Exercise{}, fmt.Errorf("query exercise: %w", err)
	}

	if err = r.attachDetails(ctx, &exercise); err != nil {
		return Exercise{}, err
	}

	return exercise, nil
}

// List returns the full exercise catalog with equipment options and muscles.
func (r *sqliteExerciseRepository) List(ctx context.Context) (_ []Exercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, pattern, category, difficulty, tracking, tempo, description_markdown
		FROM exercises
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exercises []Exercise
	for rows.Next() {
		var exercise Exercise
		if err = rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.Pattern,
			&exercise.Category,
			&exercise.Difficulty,
			&exercise.Tracking,
			&exercise.Tempo,
			&exercise.DescriptionMarkdown,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range exercises {
		if err = r.attachDetails(ctx, &exercises[i]); err != nil {
			return nil, err
		}
	}

	return exercises, nil
}

// attachDetails loads the equipment options and primary muscles for an
// exercise. Equipment keeps its stored preference order.
func (r *sqliteExerciseRepository) attachDetails(ctx context.Context, exercise *Exercise) error {
	equipment, err := r.queryStrings(ctx, `
		SELECT equipment
		FROM exercise_equipment
		WHERE exercise_id = ?
		ORDER BY position`, exercise.ID)
	if err != nil {
		return fmt.Errorf("fetch equipment for exercise %d: %w", exercise.ID, err)
	}
	exercise.Equipment = equipment

	muscles, err := r.queryStrings(ctx, `
		SELECT muscle
		FROM exercise_muscles
		WHERE exercise_id = ?
		ORDER BY position`, exercise.ID)
	if err != nil {
		return fmt.Errorf("fetch muscles for exercise %d: %w", exercise.ID, err)
	}
	exercise.PrimaryMuscles = muscles

	return nil
}

func (r *sqliteExerciseRepository) queryStrings(
	ctx context.Context,
	query string,
	args ...any,
) (_ []string, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var values []string
	for rows.Next() {
		var value string
		if err = rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		values = append(values, value)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return values, nil
}
