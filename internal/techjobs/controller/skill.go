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

// SkillService manages skills.
type SkillService struct {
	repo     SkillRepository
	producer EventProducer
	cache    JobCache
	logger   *zap.Logger
}

// NewSkillService constructs a SkillService. A nil cache disables result
// caching.
func NewSkillService(repo SkillRepository, producer EventProducer, cache JobCache, logger *zap.Logger) *SkillService {
	if cache == nil {
		cache = noCache{}
	}
	return &SkillService{
		repo:     repo,
		producer: producer,
		cache:    cache,
		logger:   logger.Named("skill_service"),
	}
}

// CreateSkill validates and saves a new skill. The skill's jobs are ignored;
// jobs are attached from the job side.
func (s *SkillService) CreateSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	if skill == nil {
		return nil, fmt.Errorf("%w: skill data required", e.ErrInvalidInput)
	}
	if skill.Saved() {
		return nil, fmt.Errorf("%w: skill already saved", e.ErrInvalidInput)
	}
	skill.Name = strings.TrimSpace(skill.Name)
	skill.Description = strings.TrimSpace(skill.Description)
	if err := validateEntity(skill); err != nil {
		return nil, err
	}

	if err := s.repo.CreateSkill(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	skill.Jobs = []models.Job{}
	s.producer.Produce(events.SkillCreated, events.ForSkill(skill))
	return skill, nil
}

// GetSkill retrieves a skill with the jobs tagged with it.
func (s *SkillService) GetSkill(ctx context.Context, id int) (*models.Skill, error) {
	skill, err := s.repo.GetSkill(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return skill, nil
}

// ListSkills returns every skill ordered by ID.
func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.repo.ListSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// DeleteSkill detaches a skill from its jobs and removes it.
func (s *SkillService) DeleteSkill(ctx context.Context, id int) error {
	skill, err := s.repo.GetSkill(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get skill for deletion: %w", err)
	}

	if err := s.repo.DeleteSkill(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.producer.Produce(events.SkillDeleted, events.ForSkill(skill))
	s.logger.Debug("skill deleted",
		zap.Int("skill_id", id),
		zap.Int("detached_jobs", len(skill.Jobs)),
	)
	return nil
}
