package db

import (
	"context"
	"errors"

	dbmodels "github.com/gartstein/techjobs/internal/techjobs/db/models"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateSkill(ctx context.Context, skill *models.Skill) error {
	row := skillToRow(skill)
	if err := r.db.WithContext(ctx).Omit("Jobs").Create(row).Error; err != nil {
		return err
	}
	skill.ID = row.ID
	return nil
}

func (r *Repository) GetSkill(ctx context.Context, id int) (*models.Skill, error) {
	var row dbmodels.Skill
	result := r.db.WithContext(ctx).
		Preload("Jobs", orderBy("job.id")).
		Preload("Jobs.Employer").
		First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return skillFromRow(&row), nil
}

func (r *Repository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var rows []dbmodels.Skill
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	skills := make([]models.Skill, 0, len(rows))
	for i := range rows {
		skills = append(skills, *skillFromRow(&rows[i]))
	}
	return skills, nil
}

// FindSkillsByIDs returns the skills that exist among ids, ordered by ID.
func (r *Repository) FindSkillsByIDs(ctx context.Context, ids []int) ([]models.Skill, error) {
	if len(ids) == 0 {
		return []models.Skill{}, nil
	}

	var rows []dbmodels.Skill
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	skills := make([]models.Skill, 0, len(rows))
	for i := range rows {
		skills = append(skills, *skillRef(&rows[i]))
	}
	return skills, nil
}

// DeleteSkill detaches the skill from every job and removes it. Jobs are
// left in place.
func (r *Repository) DeleteSkill(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM job_skills WHERE skill_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&dbmodels.Skill{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}
