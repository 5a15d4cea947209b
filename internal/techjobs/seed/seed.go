// Package seed loads employers, skills and jobs from YAML fixtures. Records
// go through the same services as user input, so fixtures are validated.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gartstein/techjobs/internal/techjobs/controller"
	"github.com/gartstein/techjobs/internal/techjobs/db"
	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Employers []EmployerFixture `yaml:"employers"`
	Skills    []SkillFixture    `yaml:"skills"`
	Jobs      []JobFixture      `yaml:"jobs"`
}

type EmployerFixture struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

type SkillFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// JobFixture refers to its employer and skills by name.
type JobFixture struct {
	Name     string   `yaml:"name"`
	Employer string   `yaml:"employer"`
	Skills   []string `yaml:"skills"`
}

// Result counts the records created by a run. Records that already exist by
// name are skipped.
type Result struct {
	Employers int
	Skills    int
	Jobs      int
	Skipped   int
}

// Load decodes fixtures, rejecting unknown keys.
func Load(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &f, nil
}

// Default returns the fixtures bundled with the binary.
func Default() (*Fixtures, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

type Seeder struct {
	repo   *db.Repository
	logger *zap.Logger
}

func NewSeeder(repo *db.Repository, logger *zap.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger.Named("seeder")}
}

// Run applies fixtures in a single transaction; any failure rolls back
// everything.
func (s *Seeder) Run(ctx context.Context, fixtures *Fixtures) (Result, error) {
	var result Result
	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		result = Result{}
		return s.apply(ctx, tx, fixtures, &result)
	})
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("Seeding finished",
		zap.Int("employers", result.Employers),
		zap.Int("skills", result.Skills),
		zap.Int("jobs", result.Jobs),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *Seeder) apply(ctx context.Context, tx *db.Repository, f *Fixtures, result *Result) error {
	employerSvc := controller.NewEmployerService(tx, events.Discard{}, nil, s.logger)
	skillSvc := controller.NewSkillService(tx, events.Discard{}, nil, s.logger)
	jobSvc := controller.NewJobService(tx, tx, tx, events.Discard{}, nil, s.logger)

	employers, err := existingEmployers(ctx, tx)
	if err != nil {
		return err
	}
	for _, fx := range f.Employers {
		if _, ok := employers[key(fx.Name)]; ok {
			result.Skipped++
			continue
		}
		created, err := employerSvc.CreateEmployer(ctx, models.NewEmployer(fx.Name, fx.Location))
		if err != nil {
			return fmt.Errorf("employer %q: %w", fx.Name, err)
		}
		employers[key(fx.Name)] = created.ID
		result.Employers++
	}

	skills, err := existingSkills(ctx, tx)
	if err != nil {
		return err
	}
	for _, fx := range f.Skills {
		if _, ok := skills[key(fx.Name)]; ok {
			result.Skipped++
			continue
		}
		skill := models.NewSkill(fx.Description)
		skill.Name = fx.Name
		created, err := skillSvc.CreateSkill(ctx, skill)
		if err != nil {
			return fmt.Errorf("skill %q: %w", fx.Name, err)
		}
		skills[key(fx.Name)] = created.ID
		result.Skills++
	}

	jobs, err := existingJobs(ctx, tx)
	if err != nil {
		return err
	}
	for _, fx := range f.Jobs {
		employerID, ok := employers[key(fx.Employer)]
		if !ok {
			return fmt.Errorf("job %q: unknown employer %q", fx.Name, fx.Employer)
		}
		if jobs[jobKey(fx.Name, employerID)] {
			result.Skipped++
			continue
		}
		input := controller.JobInput{Name: fx.Name, EmployerID: employerID}
		for _, name := range fx.Skills {
			id, ok := skills[key(name)]
			if !ok {
				return fmt.Errorf("job %q: unknown skill %q", fx.Name, name)
			}
			input.SkillIDs = append(input.SkillIDs, id)
		}
		if _, err := jobSvc.CreateJob(ctx, input); err != nil {
			return fmt.Errorf("job %q: %w", fx.Name, err)
		}
		jobs[jobKey(fx.Name, employerID)] = true
		result.Jobs++
	}
	return nil
}

func existingEmployers(ctx context.Context, repo *db.Repository) (map[string]int, error) {
	list, err := repo.ListEmployers(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(list))
	for _, emp := range list {
		out[key(emp.Name)] = emp.ID
	}
	return out, nil
}

func existingSkills(ctx context.Context, repo *db.Repository) (map[string]int, error) {
	list, err := repo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(list))
	for _, skill := range list {
		out[key(skill.Name)] = skill.ID
	}
	return out, nil
}

func existingJobs(ctx context.Context, repo *db.Repository) (map[string]bool, error) {
	list, err := repo.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(list))
	for _, job := range list {
		if job.Employer != nil {
			out[jobKey(job.Name, job.Employer.ID)] = true
		}
	}
	return out, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func jobKey(name string, employerID int) string {
	return fmt.Sprintf("%d/%s", employerID, key(name))
}
