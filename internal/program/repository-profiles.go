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

// sqliteProfileRepository stores the training profile per user.
type sqliteProfileRepository struct {
	baseRepository
}

func newSQLiteProfileRepository(db *sqlite.Database, logger *slog.Logger) *sqliteProfileRepository {
	return &sqliteProfileRepository{baseRepository: newBaseRepository(db, logger)}
}

// Get retrieves the profile for the authenticated user.
func (r *sqliteProfileRepository) Get(ctx context.Context) (Profile, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var profile Profile
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT experience, goal, unit, session_minutes, days_per_week
		FROM profiles
		WHERE user_id = ?`, userID).Scan(
		&profile.Experience,
		&profile.Goal,
		&profile.Unit,
		&profile.SessionMinutes,
		&profile.DaysPerWeek,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("profile for user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}

	equipment, err := r.queryEquipment(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	profile.Equipment = equipment

	return profile, nil
}

// Set upserts the profile and replaces the equipment list in one transaction.
func (r *sqliteProfileRepository) Set(ctx context.Context, profile Profile) (err error) {
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

	_, err = tx.ExecContext(ctx, `
		INSERT INTO profiles (user_id, experience, goal, unit, session_minutes, days_per_week)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			experience = excluded.experience,
			goal = excluded.goal,
			unit = excluded.unit,
			session_minutes = excluded.session_minutes,
			days_per_week = excluded.days_per_week`,
		userID,
		string(profile.Experience),
		string(profile.Goal),
		profile.Unit,
		profile.SessionMinutes,
		profile.DaysPerWeek,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM profile_equipment WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear profile equipment: %w", err)
	}
	for i, equipment := range profile.Equipment {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO profile_equipment (user_id, position, equipment)
			VALUES (?, ?, ?)`, userID, i, equipment); err != nil {
			return fmt.Errorf("insert profile equipment: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *sqliteProfileRepository) queryEquipment(ctx context.Context, userID int) (_ []string, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT equipment
		FROM profile_equipment
		WHERE user_id = ?
		ORDER BY position`, userID)
	if err != nil {
		return nil, fmt.Errorf("query profile equipment: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var equipment []string
	for rows.Next() {
		var item string
		if err = rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		equipment = append(equipment, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return equipment, nil
}
