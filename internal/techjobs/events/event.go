package events

import (
	"fmt"
	"time"

	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/google/uuid"
)

type EventType string

const (
	EmployerCreated EventType = "employer_created"
	EmployerDeleted EventType = "employer_deleted"
	SkillCreated    EventType = "skill_created"
	SkillDeleted    EventType = "skill_deleted"
	JobCreated      EventType = "job_created"
	JobDeleted      EventType = "job_deleted"
)

// Kinds of Subject.
const (
	KindEmployer = "employer"
	KindSkill    = "skill"
	KindJob      = "job"
)

// Subject identifies the record an event is about.
type Subject struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
	Name string `json:"name"`
	// EmployerID and SkillIDs are only set for jobs.
	EmployerID int   `json:"employer_id,omitempty"`
	SkillIDs   []int `json:"skill_ids,omitempty"`
}

// Key is the partition key: kind and ID, e.g. "job-12".
func (s Subject) Key() string {
	return fmt.Sprintf("%s-%d", s.Kind, s.ID)
}

type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	Subject    Subject   `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEvent(eventType EventType, subject Subject) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}
}

func ForEmployer(employer *models.Employer) Subject {
	return Subject{Kind: KindEmployer, ID: employer.ID, Name: employer.Name}
}

func ForSkill(skill *models.Skill) Subject {
	return Subject{Kind: KindSkill, ID: skill.ID, Name: skill.Name}
}

func ForJob(job *models.Job) Subject {
	subject := Subject{Kind: KindJob, ID: job.ID, Name: job.Name}
	if job.Employer != nil {
		subject.EmployerID = job.Employer.ID
	}
	for _, s := range job.Skills {
		subject.SkillIDs = append(subject.SkillIDs, s.ID)
	}
	return subject
}

// Discard drops every event. It stands in for Producer when no Kafka
// brokers are configured.
type Discard struct{}

func (Discard) Produce(EventType, Subject) {}
