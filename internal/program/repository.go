package program

import (
	"log/slog"

	"github.com/ahelminen/trainweek/internal/errors"
	"github.com/ahelminen/trainweek/internal/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.NewSentinel("not found")

// baseRepository carries the shared dependencies of the SQLite repositories.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{db: db, logger: logger}
}

// repository bundles the per-aggregate repositories behind one handle.
type repository struct {
	users       *sqliteUserRepository
	exercises   *sqliteExerciseRepository
	profiles    *sqliteProfileRepository
	assessments *sqliteAssessmentRepository
	programs    *sqliteProgramRepository
}

// repositoryFactory wires the repositories against a shared database handle.
type repositoryFactory struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newRepositoryFactory(db *sqlite.Database, logger *slog.Logger) *repositoryFactory {
	return &repositoryFactory{db: db, logger: logger}
}

func (f *repositoryFactory) newRepository() *repository {
	return &repository{
		users:       newSQLiteUserRepository(f.db, f.logger),
		exercises:   newSQLiteExerciseRepository(f.db, f.logger),
		profiles:    newSQLiteProfileRepository(f.db, f.logger),
		assessments: newSQLiteAssessmentRepository(f.db, f.logger),
		programs:    newSQLiteProgramRepository(f.db, f.logger),
	}
}
