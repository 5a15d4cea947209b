package handlers

import (
	"context"
	"testing"

	"github.com/gartstein/techjobs/internal/techjobs/controller"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockEmployerController struct {
	mock.Mock
}

func (m *MockEmployerController) CreateEmployer(ctx context.Context, employer *models.Employer) (*models.Employer, error) {
	args := m.Called(ctx, employer)
	created, _ := args.Get(0).(*models.Employer)
	return created, args.Error(1)
}

func (m *MockEmployerController) GetEmployer(ctx context.Context, id int) (*models.Employer, error) {
	args := m.Called(ctx, id)
	employer, _ := args.Get(0).(*models.Employer)
	return employer, args.Error(1)
}

func (m *MockEmployerController) ListEmployers(ctx context.Context) ([]models.Employer, error) {
	args := m.Called(ctx)
	employers, _ := args.Get(0).([]models.Employer)
	return employers, args.Error(1)
}

func (m *MockEmployerController) DeleteEmployer(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillController struct {
	mock.Mock
}

func (m *MockSkillController) CreateSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	args := m.Called(ctx, skill)
	created, _ := args.Get(0).(*models.Skill)
	return created, args.Error(1)
}

func (m *MockSkillController) GetSkill(ctx context.Context, id int) (*models.Skill, error) {
	args := m.Called(ctx, id)
	skill, _ := args.Get(0).(*models.Skill)
	return skill, args.Error(1)
}

func (m *MockSkillController) ListSkills(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	skills, _ := args.Get(0).([]models.Skill)
	return skills, args.Error(1)
}

func (m *MockSkillController) DeleteSkill(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobController struct {
	mock.Mock
}

func (m *MockJobController) CreateJob(ctx context.Context, input controller.JobInput) (*models.Job, error) {
	args := m.Called(ctx, input)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *MockJobController) GetJob(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *MockJobController) ListJobs(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Error(1)
}

func (m *MockJobController) FindJobs(ctx context.Context, column, value string) ([]models.Job, error) {
	args := m.Called(ctx, column, value)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Error(1)
}

func (m *MockJobController) DeleteJob(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type testMocks struct {
	jobs      *MockJobController
	employers *MockEmployerController
	skills    *MockSkillController
}

func (m testMocks) assertExpectations(t *testing.T) {
	m.jobs.AssertExpectations(t)
	m.employers.AssertExpectations(t)
	m.skills.AssertExpectations(t)
}

// newTestRouter returns the full router backed by fresh mocks.
func newTestRouter(t *testing.T, jwtSecret string) (*gin.Engine, testMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mocks := testMocks{
		jobs:      &MockJobController{},
		employers: &MockEmployerController{},
		skills:    &MockSkillController{},
	}
	router, err := NewRouter(Services{
		Jobs:      mocks.jobs,
		Employers: mocks.employers,
		Skills:    mocks.skills,
	}, jwtSecret, zaptest.NewLogger(t))
	require.NoError(t, err)
	return router, mocks
}

func launchCode() *models.Employer {
	employer := models.NewEmployer("LaunchCode", "St. Louis")
	employer.ID = 1
	return employer
}

func goSkill() models.Skill {
	skill := models.NewSkill("Compiled, concurrent")
	skill.ID = 2
	skill.Name = "Go"
	return *skill
}

func backendJob() *models.Job {
	job := models.NewJob("Backend Developer", launchCode(), []models.Skill{goSkill()})
	job.ID = 3
	return job
}
