package handlers

import (
	"context"

	"github.com/gartstein/techjobs/internal/techjobs/controller"
	"github.com/gartstein/techjobs/internal/techjobs/models"
)

// EmployerController is the employer business logic the handlers invoke.
type EmployerController interface {
	CreateEmployer(ctx context.Context, employer *models.Employer) (*models.Employer, error)
	GetEmployer(ctx context.Context, id int) (*models.Employer, error)
	ListEmployers(ctx context.Context) ([]models.Employer, error)
	DeleteEmployer(ctx context.Context, id int) error
}

// SkillController is the skill business logic the handlers invoke.
type SkillController interface {
	CreateSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	GetSkill(ctx context.Context, id int) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	DeleteSkill(ctx context.Context, id int) error
}

// JobController is the job business logic the handlers invoke.
type JobController interface {
	CreateJob(ctx context.Context, input controller.JobInput) (*models.Job, error)
	GetJob(ctx context.Context, id int) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	FindJobs(ctx context.Context, column, value string) ([]models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// Services bundles the controllers behind every route.
type Services struct {
	Jobs      JobController
	Employers EmployerController
	Skills    SkillController
}
