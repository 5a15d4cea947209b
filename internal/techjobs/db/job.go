package db

import (
	"context"
	"errors"
	"strings"

	dbmodels "github.com/gartstein/techjobs/internal/techjobs/db/models"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"gorm.io/gorm"
)

// Search columns understood by FindJobs.
const (
	ColumnAll      = "all"
	ColumnName     = "name"
	ColumnEmployer = "employer"
	ColumnSkill    = "skill"
)

// likeEscaper makes %, _ and ! match literally in a LIKE ... ESCAPE '!'
// pattern.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// CreateJob inserts the job together with its employer_id and job_skills
// rows. The referenced employer and skills must already exist.
func (r *Repository) CreateJob(ctx context.Context, job *models.Job) error {
	row := jobToRow(job)
	if err := r.db.WithContext(ctx).Omit("Employer", "Skills.*").Create(row).Error; err != nil {
		return err
	}
	job.ID = row.ID
	return nil
}

func (r *Repository) GetJob(ctx context.Context, id int) (*models.Job, error) {
	var row dbmodels.Job
	result := r.jobsWithRelations(ctx).First(&row, "job.id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return jobFromRow(&row), nil
}

func (r *Repository) ListJobs(ctx context.Context) ([]models.Job, error) {
	var rows []dbmodels.Job
	if err := r.jobsWithRelations(ctx).Order("job.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return jobsFromRows(rows), nil
}

// FindJobs returns jobs whose column contains value, ignoring case. A value
// of "all" matches every job; the "all" column matches name, employer name
// or any skill name.
func (r *Repository) FindJobs(ctx context.Context, column, value string) ([]models.Job, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == ColumnAll {
		return r.ListJobs(ctx)
	}

	pattern := "%" + likeEscaper.Replace(value) + "%"
	employers := r.db.WithContext(ctx).Model(&dbmodels.Employer{}).
		Select("employer.id").
		Where("LOWER(employer.name) LIKE ? ESCAPE '!'", pattern)
	skills := r.db.WithContext(ctx).Table("job_skills").
		Select("job_skills.job_id").
		Joins("JOIN skill ON skill.id = job_skills.skill_id").
		Where("LOWER(skill.name) LIKE ? ESCAPE '!'", pattern)

	query := r.jobsWithRelations(ctx)
	switch column {
	case ColumnName:
		query = query.Where("LOWER(job.name) LIKE ? ESCAPE '!'", pattern)
	case ColumnEmployer:
		query = query.Where("job.employer_id IN (?)", employers)
	case ColumnSkill:
		query = query.Where("job.id IN (?)", skills)
	case ColumnAll:
		query = query.Where(
			r.db.Where("LOWER(job.name) LIKE ? ESCAPE '!'", pattern).
				Or("job.employer_id IN (?)", employers).
				Or("job.id IN (?)", skills),
		)
	default:
		return nil, e.ErrInvalidInput
	}

	var rows []dbmodels.Job
	if err := query.Order("job.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return jobsFromRows(rows), nil
}

// DeleteJob removes the job and its job_skills rows.
func (r *Repository) DeleteJob(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM job_skills WHERE job_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&dbmodels.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) jobsWithRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&dbmodels.Job{}).
		Preload("Employer").
		Preload("Skills", orderBy("skill.id"))
}
