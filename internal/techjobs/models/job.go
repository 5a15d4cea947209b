package models

import "strings"

// Job is owned by one employer and tagged with skills. It is the owning side
// of both relations: saving a job writes its employer_id and job_skills rows.
type Job struct {
	Entity
	Employer *Employer `json:"employer,omitempty" validate:"required,structonly"`
	Skills   []Skill   `json:"skills"`
}

// NewJob returns an unsaved job for the given employer and skills.
func NewJob(name string, employer *Employer, skills []Skill) *Job {
	if skills == nil {
		skills = []Skill{}
	}
	return &Job{
		Entity:   Entity{Name: name},
		Employer: employer,
		Skills:   skills,
	}
}

// Equal reports whether both values refer to the same stored job.
func (j *Job) Equal(other *Job) bool {
	if j == nil || other == nil {
		return j == other
	}
	return j.Entity.Equal(&other.Entity)
}

// EmployerName returns the employer's name, or an empty string when unset.
func (j *Job) EmployerName() string {
	if j.Employer == nil {
		return ""
	}
	return j.Employer.Name
}

// SkillNames joins the names of the job's skills with ", ".
func (j *Job) SkillNames() string {
	names := make([]string, 0, len(j.Skills))
	for _, s := range j.Skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// HasSkill reports whether the job is tagged with the given skill.
func (j *Job) HasSkill(skill *Skill) bool {
	for i := range j.Skills {
		if j.Skills[i].Equal(skill) {
			return true
		}
	}
	return false
}
