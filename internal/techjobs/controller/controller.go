// Package controller implements the core business logic (service layer)
// for employers, skills and jobs, orchestrating repository operations,
// validation, result caching and lifecycle events.
package controller

import (
	"context"

	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/gartstein/techjobs/internal/techjobs/models"
)

type EventProducer interface {
	Produce(eventType events.EventType, subject events.Subject)
}

// EmployerRepository defines the storage interface for Employer records.
type EmployerRepository interface {
	CreateEmployer(ctx context.Context, employer *models.Employer) error
	GetEmployer(ctx context.Context, id int) (*models.Employer, error)
	ListEmployers(ctx context.Context) ([]models.Employer, error)
	DeleteEmployer(ctx context.Context, id int) error
}

// SkillRepository defines the storage interface for Skill records.
type SkillRepository interface {
	CreateSkill(ctx context.Context, skill *models.Skill) error
	GetSkill(ctx context.Context, id int) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	FindSkillsByIDs(ctx context.Context, ids []int) ([]models.Skill, error)
	DeleteSkill(ctx context.Context, id int) error
}

// JobRepository defines the storage interface for Job records.
type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id int) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	FindJobs(ctx context.Context, column, value string) ([]models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// JobCache stores job search results. Implementations must tolerate being
// unavailable by reporting misses.
type JobCache interface {
	GetJobs(ctx context.Context, key string) ([]models.Job, bool)
	SetJobs(ctx context.Context, key string, jobs []models.Job)
	Invalidate(ctx context.Context)
}

type noCache struct{}

func (noCache) GetJobs(context.Context, string) ([]models.Job, bool) { return nil, false }
func (noCache) SetJobs(context.Context, string, []models.Job)       {}
func (noCache) Invalidate(context.Context)                           {}
