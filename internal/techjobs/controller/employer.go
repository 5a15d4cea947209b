package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"go.uber.org/zap"
)

// EmployerService manages employers.
type EmployerService struct {
	repo     EmployerRepository
	producer EventProducer
	cache    JobCache
	logger   *zap.Logger
}

// NewEmployerService constructs an EmployerService. A nil cache disables
// result caching.
func NewEmployerService(repo EmployerRepository, producer EventProducer, cache JobCache, logger *zap.Logger) *EmployerService {
	if cache == nil {
		cache = noCache{}
	}
	return &EmployerService{
		repo:     repo,
		producer: producer,
		cache:    cache,
		logger:   logger.Named("employer_service"),
	}
}

// CreateEmployer validates and saves a new employer.
func (s *EmployerService) CreateEmployer(ctx context.Context, employer *models.Employer) (*models.Employer, error) {
	if employer == nil {
		return nil, fmt.Errorf("%w: employer data required", e.ErrInvalidInput)
	}
	if employer.Saved() {
		return nil, fmt.Errorf("%w: employer already saved", e.ErrInvalidInput)
	}
	employer.Name = strings.TrimSpace(employer.Name)
	employer.Location = strings.TrimSpace(employer.Location)
	if err := validateEntity(employer); err != nil {
		return nil, err
	}
	if employer.Jobs == nil {
		employer.Jobs = []models.Job{}
	}

	if err := s.repo.CreateEmployer(ctx, employer); err != nil {
		return nil, fmt.Errorf("failed to create employer: %w", err)
	}
	s.producer.Produce(events.EmployerCreated, events.ForEmployer(employer))
	return employer, nil
}

// GetEmployer retrieves an employer with its jobs.
func (s *EmployerService) GetEmployer(ctx context.Context, id int) (*models.Employer, error) {
	employer, err := s.repo.GetEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	return employer, nil
}

// ListEmployers returns every employer ordered by ID.
func (s *EmployerService) ListEmployers(ctx context.Context) ([]models.Employer, error) {
	employers, err := s.repo.ListEmployers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}
	return employers, nil
}

// DeleteEmployer removes an employer that owns no jobs.
func (s *EmployerService) DeleteEmployer(ctx context.Context, id int) error {
	employer, err := s.repo.GetEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get employer for deletion: %w", err)
	}

	if err := s.repo.DeleteEmployer(ctx, id); err != nil {
		if errors.Is(err, e.ErrInUse) || errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employer: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.producer.Produce(events.EmployerDeleted, events.ForEmployer(employer))
	return nil
}
