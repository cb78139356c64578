package program

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahelminen/trainweek/internal/sqlite"
)

// sqliteUserRepository manages anonymous user rows keyed by session.
type sqliteUserRepository struct {
	baseRepository
}

func newSQLiteUserRepository(db *sqlite.Database, logger *slog.Logger) *sqliteUserRepository {
	return &sqliteUserRepository{baseRepository: newBaseRepository(db, logger)}
}

// Create inserts a new user and returns its ID.
func (r *sqliteUserRepository) Create(ctx context.Context) (int, error) {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO users DEFAULT VALUES`)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return int(id), nil
}

// Delete removes a user row. Dependent rows are cleared by foreign key
// cascades.
func (r *sqliteUserRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Exists reports whether a user row exists.
func (r *sqliteUserRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query user: %w", err)
	}
	return count > 0, nil
}
