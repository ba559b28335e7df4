package advocate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries per-field messages for a rejected seed payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid advocates payload (%d fields)", len(e.Fields))
}

type Service struct {
	repo      Repository
	fallback  []Advocate
	allowSeed bool
	validate  *validator.Validate
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithFallback sets the records served when the repository cannot be read.
func WithFallback(advocates []Advocate) Option {
	return func(s *Service) { s.fallback = advocates }
}

// WithSeedEnabled allows Seed to write to the repository.
func WithSeedEnabled(enabled bool) Option {
	return func(s *Service) { s.allowSeed = enabled }
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		validate: validator.New(),
		logger:   slog.Default().With("component", "advocate-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every advocate. A repository failure is not propagated: the fallback
// records are served instead so the directory stays usable without a database.
func (s *Service) List(ctx context.Context) ([]Advocate, error) {
	advocates, err := s.repo.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.Warn("advocate repository not available, serving fallback data", "error", err, "fallback", len(s.fallback))
		out := make([]Advocate, len(s.fallback))
		copy(out, s.fallback)
		return out, nil
	}
	return advocates, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Advocate, error) {
	return s.repo.GetByID(ctx, id)
}

// Seed inserts the given advocates, or the bundled seed data when none are given.
func (s *Service) Seed(ctx context.Context, advocates []Advocate) ([]Advocate, error) {
	if !s.allowSeed {
		return nil, ErrSeedDisabled
	}
	if len(advocates) == 0 {
		advocates = SeedData()
	}
	if fields := s.validateAll(advocates); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	created, err := s.repo.Insert(ctx, advocates)
	if err != nil {
		return nil, fmt.Errorf("seed advocates: %w", err)
	}
	s.logger.Info("seeded advocates", "count", len(created))
	return created, nil
}

func (s *Service) validateAll(advocates []Advocate) map[string]string {
	errs := map[string]string{}
	for i, a := range advocates {
		err := s.validate.Struct(a)
		if err == nil {
			continue
		}
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			errs[fmt.Sprintf("%d", i)] = err.Error()
			continue
		}
		for _, fe := range ves {
			errs[fmt.Sprintf("%d.%s", i, jsonFieldName(fe.StructField()))] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return errs
}

func jsonFieldName(structField string) string {
	// Specialties[0] -> specialties[0]
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
