package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gartstein/techjobs/internal/techjobs/controller"
	"github.com/gartstein/techjobs/internal/techjobs/db"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/gartstein/techjobs/internal/techjobs/handlers"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type recordingProducer struct {
	events []events.EventType
}

func (p *recordingProducer) Produce(eventType events.EventType, _ events.Subject) {
	p.events = append(p.events, eventType)
}

type IntegrationTestSuite struct {
	suite.Suite
	repo      *db.Repository
	producer  *recordingProducer
	employers *controller.EmployerService
	skills    *controller.SkillService
	jobs      *controller.JobService
	router    http.Handler
	logger    *zap.Logger
}

func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupTest() {
	s.logger = zap.NewNop()
	repo, err := db.NewRepository(&db.Config{
		Driver:       db.DriverSQLite,
		Path:         filepath.Join(s.T().TempDir(), "techjobs.db"),
		MaxOpenConns: 1,
	}, s.logger)
	s.Require().NoError(err)
	s.repo = repo

	s.producer = &recordingProducer{}
	s.employers = controller.NewEmployerService(repo, s.producer, nil, s.logger)
	s.skills = controller.NewSkillService(repo, s.producer, nil, s.logger)
	s.jobs = controller.NewJobService(repo, repo, repo, s.producer, nil, s.logger)

	gin.SetMode(gin.TestMode)
	router, err := handlers.NewRouter(handlers.Services{
		Jobs:      s.jobs,
		Employers: s.employers,
		Skills:    s.skills,
	}, "", s.logger)
	s.Require().NoError(err)
	s.router = router
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
}

func (s *IntegrationTestSuite) createEmployer(name string) *models.Employer {
	employer, err := s.employers.CreateEmployer(context.Background(), models.NewEmployer(name, "St. Louis"))
	s.Require().NoError(err)
	return employer
}

func (s *IntegrationTestSuite) createSkill(name string) *models.Skill {
	skill := models.NewSkill(name + " work")
	skill.Name = name
	created, err := s.skills.CreateSkill(context.Background(), skill)
	s.Require().NoError(err)
	return created
}

func (s *IntegrationTestSuite) TestJobAppearsOnEmployerAndSkill() {
	ctx := context.Background()
	employer := s.createEmployer("LaunchCode")
	skill := s.createSkill("Go")

	reloaded, err := s.employers.GetEmployer(ctx, employer.ID)
	s.Require().NoError(err)
	s.NotNil(reloaded.Jobs)
	s.Empty(reloaded.Jobs)

	job, err := s.jobs.CreateJob(ctx, controller.JobInput{
		Name:       "Backend Developer",
		EmployerID: employer.ID,
		SkillIDs:   []int{skill.ID},
	})
	s.Require().NoError(err)
	s.NotNil(job.Employer)
	s.True(job.Saved())

	reloaded, err = s.employers.GetEmployer(ctx, employer.ID)
	s.Require().NoError(err)
	s.Require().Len(reloaded.Jobs, 1)
	s.True(reloaded.Jobs[0].Equal(job))

	reloadedSkill, err := s.skills.GetSkill(ctx, skill.ID)
	s.Require().NoError(err)
	s.Require().Len(reloadedSkill.Jobs, 1)
	s.Equal("Backend Developer", reloadedSkill.Jobs[0].Name)

	stored, err := s.jobs.GetJob(ctx, job.ID)
	s.Require().NoError(err)
	s.True(stored.Employer.Equal(employer))
	s.True(stored.HasSkill(skill))

	s.Equal([]events.EventType{events.EmployerCreated, events.SkillCreated, events.JobCreated}, s.producer.events)
}

func (s *IntegrationTestSuite) TestDeletionRules() {
	ctx := context.Background()
	employer := s.createEmployer("LaunchCode")
	skill := s.createSkill("Go")
	job, err := s.jobs.CreateJob(ctx, controller.JobInput{Name: "Dev", EmployerID: employer.ID, SkillIDs: []int{skill.ID}})
	s.Require().NoError(err)

	s.ErrorIs(s.employers.DeleteEmployer(ctx, employer.ID), e.ErrInUse)

	s.Require().NoError(s.skills.DeleteSkill(ctx, skill.ID))
	remaining, err := s.jobs.GetJob(ctx, job.ID)
	s.Require().NoError(err, "deleting a skill keeps its jobs")
	s.Empty(remaining.Skills)

	s.Require().NoError(s.jobs.DeleteJob(ctx, job.ID))
	s.Require().NoError(s.employers.DeleteEmployer(ctx, employer.ID))
	_, err = s.employers.GetEmployer(ctx, employer.ID)
	s.ErrorIs(err, e.ErrNotFound)
}

func (s *IntegrationTestSuite) TestAddJobThroughForms() {
	employer := s.createEmployer("LaunchCode")
	skill := s.createSkill("Go")

	form := url.Values{
		"name":       {"Web Developer"},
		"employerId": {strconv.Itoa(employer.ID)},
		"skills":     {strconv.Itoa(skill.ID)},
	}
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusFound, rec.Code)

	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list/jobs?column=employer&value=launch", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Web Developer")

	search := url.Values{"searchType": {"skill"}, "searchTerm": {"GO"}}
	req = httptest.NewRequest(http.MethodPost, "/search/results", strings.NewReader(search.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Web Developer")
}

func (s *IntegrationTestSuite) TestQueriesScript() {
	ctx := context.Background()
	employer := s.createEmployer("LaunchCode")
	skill := s.createSkill("Go")
	_, err := s.jobs.CreateJob(ctx, controller.JobInput{Name: "Dev", EmployerID: employer.ID, SkillIDs: []int{skill.ID}})
	s.Require().NoError(err)

	script, err := os.ReadFile(filepath.Join("..", "..", "..", "queries.sql"))
	s.Require().NoError(err)
	s.Contains(string(script), "DROP TABLE job;")

	// foreign keys are enforced, so the script must drop job_skills first
	s.Error(s.repo.Exec(ctx, "DROP TABLE job"))

	n, err := s.repo.ExecScript(ctx, string(script))
	s.Require().NoError(err)
	s.Equal(4, n)

	_, err = s.jobs.ListJobs(ctx)
	s.Error(err, "job table is gone after the script runs")

	skills, err := s.skills.ListSkills(ctx)
	s.Require().NoError(err)
	s.Len(skills, 1)
}
