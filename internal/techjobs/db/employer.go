package db

import (
	"context"
	"errors"

	dbmodels "github.com/gartstein/techjobs/internal/techjobs/db/models"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateEmployer(ctx context.Context, employer *models.Employer) error {
	row := employerToRow(employer)
	if err := r.db.WithContext(ctx).Omit("Jobs").Create(row).Error; err != nil {
		return err
	}
	employer.ID = row.ID
	if employer.Jobs == nil {
		employer.Jobs = []models.Job{}
	}
	return nil
}

func (r *Repository) GetEmployer(ctx context.Context, id int) (*models.Employer, error) {
	var row dbmodels.Employer
	result := r.db.WithContext(ctx).
		Preload("Jobs", orderBy("job.id")).
		Preload("Jobs.Skills", orderBy("skill.id")).
		First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return employerFromRow(&row), nil
}

func (r *Repository) ListEmployers(ctx context.Context) ([]models.Employer, error) {
	var rows []dbmodels.Employer
	result := r.db.WithContext(ctx).
		Preload("Jobs", orderBy("job.id")).
		Order("id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	employers := make([]models.Employer, 0, len(rows))
	for i := range rows {
		employers = append(employers, *employerFromRow(&rows[i]))
	}
	return employers, nil
}

// DeleteEmployer removes an employer that owns no jobs. Employers that still
// own jobs are rejected with ErrInUse.
func (r *Repository) DeleteEmployer(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jobs int64
		if err := tx.Model(&dbmodels.Job{}).Where("employer_id = ?", id).Count(&jobs).Error; err != nil {
			return err
		}
		if jobs > 0 {
			return e.ErrInUse
		}

		result := tx.Delete(&dbmodels.Employer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}

func orderBy(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column)
	}
}
