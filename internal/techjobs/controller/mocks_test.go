package controller

import (
	"context"
	"sync"

	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/gartstein/techjobs/internal/techjobs/models"
)

// MockRepository implements the employer, skill and job repositories for
// testing. Unset functions panic when called.
type MockRepository struct {
	createEmployer  func(context.Context, *models.Employer) error
	getEmployer     func(context.Context, int) (*models.Employer, error)
	listEmployers   func(context.Context) ([]models.Employer, error)
	deleteEmployer  func(context.Context, int) error
	createSkill     func(context.Context, *models.Skill) error
	getSkill        func(context.Context, int) (*models.Skill, error)
	listSkills      func(context.Context) ([]models.Skill, error)
	findSkillsByIDs func(context.Context, []int) ([]models.Skill, error)
	deleteSkill     func(context.Context, int) error
	createJob       func(context.Context, *models.Job) error
	getJob          func(context.Context, int) (*models.Job, error)
	listJobs        func(context.Context) ([]models.Job, error)
	findJobs        func(context.Context, string, string) ([]models.Job, error)
	deleteJob       func(context.Context, int) error
}

func (m *MockRepository) CreateEmployer(ctx context.Context, employer *models.Employer) error {
	return m.createEmployer(ctx, employer)
}

func (m *MockRepository) GetEmployer(ctx context.Context, id int) (*models.Employer, error) {
	return m.getEmployer(ctx, id)
}

func (m *MockRepository) ListEmployers(ctx context.Context) ([]models.Employer, error) {
	return m.listEmployers(ctx)
}

func (m *MockRepository) DeleteEmployer(ctx context.Context, id int) error {
	return m.deleteEmployer(ctx, id)
}

func (m *MockRepository) CreateSkill(ctx context.Context, skill *models.Skill) error {
	return m.createSkill(ctx, skill)
}

func (m *MockRepository) GetSkill(ctx context.Context, id int) (*models.Skill, error) {
	return m.getSkill(ctx, id)
}

func (m *MockRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return m.listSkills(ctx)
}

func (m *MockRepository) FindSkillsByIDs(ctx context.Context, ids []int) ([]models.Skill, error) {
	return m.findSkillsByIDs(ctx, ids)
}

func (m *MockRepository) DeleteSkill(ctx context.Context, id int) error {
	return m.deleteSkill(ctx, id)
}

func (m *MockRepository) CreateJob(ctx context.Context, job *models.Job) error {
	return m.createJob(ctx, job)
}

func (m *MockRepository) GetJob(ctx context.Context, id int) (*models.Job, error) {
	return m.getJob(ctx, id)
}

func (m *MockRepository) ListJobs(ctx context.Context) ([]models.Job, error) {
	return m.listJobs(ctx)
}

func (m *MockRepository) FindJobs(ctx context.Context, column, value string) ([]models.Job, error) {
	return m.findJobs(ctx, column, value)
}

func (m *MockRepository) DeleteJob(ctx context.Context, id int) error {
	return m.deleteJob(ctx, id)
}

type producedEvent struct {
	EventType events.EventType
	Subject   events.Subject
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []producedEvent
}

func (m *MockProducer) Produce(eventType events.EventType, subject events.Subject) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.producedEvents = append(m.producedEvents, producedEvent{eventType, subject})
}

// mapCache is an in-memory JobCache.
type mapCache struct {
	entries       map[string][]models.Job
	invalidations int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]models.Job{}}
}

func (c *mapCache) GetJobs(_ context.Context, key string) ([]models.Job, bool) {
	jobs, ok := c.entries[key]
	return jobs, ok
}

func (c *mapCache) SetJobs(_ context.Context, key string, jobs []models.Job) {
	c.entries[key] = jobs
}

func (c *mapCache) Invalidate(context.Context) {
	c.entries = map[string][]models.Job{}
	c.invalidations++
}

func savedEmployer(id int, name string) *models.Employer {
	employer := models.NewEmployer(name, "St. Louis")
	employer.ID = id
	return employer
}

func savedSkill(id int, name string) models.Skill {
	return models.Skill{
		Entity:      models.Entity{ID: id, Name: name},
		Description: name + " description",
		Jobs:        []models.Job{},
	}
}
