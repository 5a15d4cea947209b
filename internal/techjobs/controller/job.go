package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gartstein/techjobs/internal/techjobs/db"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"go.uber.org/zap"
)

// SearchColumns lists the columns FindJobs accepts, in display order.
var SearchColumns = []string{db.ColumnAll, db.ColumnName, db.ColumnEmployer, db.ColumnSkill}

// JobInput carries the fields of the add-job form.
type JobInput struct {
	Name       string
	EmployerID int
	SkillIDs   []int
}

// JobService manages jobs and their links to employers and skills.
type JobService struct {
	jobs      JobRepository
	employers EmployerRepository
	skills    SkillRepository
	producer  EventProducer
	cache     JobCache
	logger    *zap.Logger
}

// NewJobService constructs a JobService. A nil cache disables result caching.
func NewJobService(
	jobs JobRepository,
	employers EmployerRepository,
	skills SkillRepository,
	producer EventProducer,
	cache JobCache,
	logger *zap.Logger,
) *JobService {
	if cache == nil {
		cache = noCache{}
	}
	return &JobService{
		jobs:      jobs,
		employers: employers,
		skills:    skills,
		producer:  producer,
		cache:     cache,
		logger:    logger.Named("job_service"),
	}
}

// CreateJob resolves the employer and skills referenced by input, validates
// the resulting job and saves it. Lookup and constraint failures are returned
// together as e.FieldErrors.
func (s *JobService) CreateJob(ctx context.Context, input JobInput) (*models.Job, error) {
	fields := e.FieldErrors{}
	input.Name = strings.TrimSpace(input.Name)

	var employer *models.Employer
	if input.EmployerID <= 0 {
		fields["employer"] = "employer is required"
	} else {
		found, err := s.employers.GetEmployer(ctx, input.EmployerID)
		switch {
		case errors.Is(err, e.ErrNotFound):
			fields["employer"] = "employer not found"
		case err != nil:
			return nil, fmt.Errorf("failed to get employer: %w", err)
		default:
			employer = found
		}
	}

	skillIDs := uniqueIDs(input.SkillIDs)
	var skills []models.Skill
	if len(skillIDs) == 0 {
		fields["skills"] = "at least one skill is required"
	} else {
		found, err := s.skills.FindSkillsByIDs(ctx, skillIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to find skills: %w", err)
		}
		if len(found) != len(skillIDs) {
			fields["skills"] = "unknown skill selected"
		}
		skills = found
	}

	job := models.NewJob(input.Name, employer, skills)
	if err := merge(fields, validateEntity(job)); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, fields
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.producer.Produce(events.JobCreated, events.ForJob(job))
	return job, nil
}

// GetJob retrieves a job with its employer and skills.
func (s *JobService) GetJob(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs returns every job ordered by ID.
func (s *JobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// FindJobs returns the jobs whose column contains value, ignoring case. An
// empty column searches every column; a value of "all" returns every job.
// A result read while another request mutates jobs may be cached after that
// request's invalidation, so cached results can lag by up to the cache TTL.
func (s *JobService) FindJobs(ctx context.Context, column, value string) ([]models.Job, error) {
	column = strings.ToLower(strings.TrimSpace(column))
	if column == "" {
		column = db.ColumnAll
	}
	if !validColumn(column) {
		return nil, e.FieldErrors{"column": fmt.Sprintf("column must be one of %s", strings.Join(SearchColumns, ", "))}
	}
	value = strings.TrimSpace(value)

	key := column + ":" + strings.ToLower(value)
	if jobs, ok := s.cache.GetJobs(ctx, key); ok {
		return jobs, nil
	}

	jobs, err := s.jobs.FindJobs(ctx, column, value)
	if err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	s.cache.SetJobs(ctx, key, jobs)
	return jobs, nil
}

// DeleteJob removes a job and its skill links.
func (s *JobService) DeleteJob(ctx context.Context, id int) error {
	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get job for deletion: %w", err)
	}

	if err := s.jobs.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.producer.Produce(events.JobDeleted, events.ForJob(job))
	return nil
}

func validColumn(column string) bool {
	for _, c := range SearchColumns {
		if c == column {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
