package program

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/ahelminen/trainweek/internal/contexthelpers"
	"github.com/ahelminen/trainweek/internal/errors"
	"github.com/ahelminen/trainweek/internal/sqlite"
)

// ErrInvalidProfile is returned when a submitted profile fails validation.
var ErrInvalidProfile = errors.NewSentinel("invalid profile")

// Service handles the business logic for program generation and persistence.
type Service struct {
	repo   *repository
	db     *sqlite.Database
	logger *slog.Logger
}

// NewService creates a new program service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	factory := newRepositoryFactory(db, logger)
	return &Service{
		repo:   factory.newRepository(),
		db:     db,
		logger: logger,
	}
}

// RegisterUser creates a new anonymous user and returns its ID.
func (s *Service) RegisterUser(ctx context.Context) (int, error) {
	id, err := s.repo.users.Create(ctx)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// UserExists reports whether a user ID refers to a known user.
func (s *Service) UserExists(ctx context.Context, id int) (bool, error) {
	exists, err := s.repo.users.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return exists, nil
}

// Profile retrieves the training profile for the current user.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	profile, err := s.repo.profiles.Get(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile validates and stores the training profile.
func (s *Service) SaveProfile(ctx context.Context, profile Profile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}
	if err := s.repo.profiles.Set(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func validateProfile(profile Profile) error {
	validGoals := []Goal{GoalGain, GoalMaintain, GoalLose}
	if !slices.Contains(validGoals, profile.Goal) {
		return errors.Wrap(ErrInvalidProfile, "validate goal", slog.String("goal", string(profile.Goal)))
	}
	validLevels := []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
	if !slices.Contains(validLevels, profile.Experience) {
		return errors.Wrap(ErrInvalidProfile, "validate experience",
			slog.String("experience", string(profile.Experience)))
	}
	if profile.SessionMinutes < minimumSessionMinutes {
		return errors.Wrap(ErrInvalidProfile, "validate session length",
			slog.Int("sessionMinutes", profile.SessionMinutes))
	}
	if _, ok := weekTemplates[profile.DaysPerWeek]; !ok {
		return errors.Wrap(ErrInvalidProfile, "validate weekly frequency",
			slog.Int("daysPerWeek", profile.DaysPerWeek))
	}
	return nil
}

// Assessment retrieves the current user's movement assessment. A user without
// an assessment gets the zero value.
func (s *Service) Assessment(ctx context.Context) (Assessment, error) {
	assessment, err := s.repo.assessments.Get(ctx)
	if err != nil {
		return Assessment{}, fmt.Errorf("get assessment: %w", err)
	}
	return assessment, nil
}

// SaveAssessment stores the movement assessment for the current user.
func (s *Service) SaveAssessment(ctx context.Context, assessment Assessment) error {
	if err := s.repo.assessments.Set(ctx, assessment); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

// ListExercises returns the full exercise catalog.
func (s *Service) ListExercises(ctx context.Context) ([]Exercise, error) {
	exercises, err := s.repo.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// GetExercise retrieves a catalog exercise by ID.
func (s *Service) GetExercise(ctx context.Context, id int) (Exercise, error) {
	exercise, err := s.repo.exercises.Get(ctx, id)
	if err != nil {
		return Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	return exercise, nil
}

// GenerateProgram builds a new program from the stored profile and assessment
// and persists it as the user's latest program.
func (s *Service) GenerateProgram(ctx context.Context) (GeneratedProgram, error) {
	profile, err := s.repo.profiles.Get(ctx)
	if err != nil {
		return GeneratedProgram{}, fmt.Errorf("get profile: %w", err)
	}

	assessment, err := s.repo.assessments.Get(ctx)
	if err != nil {
		return GeneratedProgram{}, fmt.Errorf("get assessment: %w", err)
	}

	catalog, err := s.repo.exercises.List(ctx)
	if err != nil {
		return GeneratedProgram{}, fmt.Errorf("get exercise catalog: %w", err)
	}

	gen, err := newGenerator(s.logger, catalog)
	if err != nil {
		return GeneratedProgram{}, fmt.Errorf("initialize program generator: %w", err)
	}

	generated, err := gen.Generate(profile, assessment)
	if err != nil {
		return GeneratedProgram{}, fmt.Errorf("generate program: %w", err)
	}

	if err = s.repo.programs.Create(ctx, generated); err != nil {
		return GeneratedProgram{}, fmt.Errorf("persist program: %w", err)
	}

	return generated, nil
}

// ExportData writes everything stored for the current user into a standalone
// SQLite file and returns its path. The caller is responsible for removing the
// file after use.
func (s *Service) ExportData(ctx context.Context) (string, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)
	path, err := s.db.ExportUserData(ctx, userID, os.TempDir())
	if err != nil {
		return "", fmt.Errorf("export user data: %w", err)
	}
	return path, nil
}

// DeleteUser removes the current user. Profiles, assessments, and programs go
// with it through foreign key cascades.
func (s *Service) DeleteUser(ctx context.Context) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)
	if err := s.repo.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// LatestProgram returns the most recently generated program for the user.
func (s *Service) LatestProgram(ctx context.Context) (GeneratedProgram, error) {
	generated, err := s.repo.programs.GetLatest(ctx)
	if err != nil {
		return GeneratedProgram{}, fmt.Errorf("get latest program: %w", err)
	}
	return generated, nil
}
