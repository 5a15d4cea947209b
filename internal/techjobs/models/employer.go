package models

// Employer owns any number of jobs. Jobs is the inverse side of Job.Employer:
// it is rebuilt from storage on load and never written back.
type Employer struct {
	Entity
	Location string `json:"location" validate:"notblank,max=100"`
	Jobs     []Job  `json:"jobs"`
}

// NewEmployer returns an unsaved employer with an empty job list.
func NewEmployer(name, location string) *Employer {
	return &Employer{
		Entity:   Entity{Name: name},
		Location: location,
		Jobs:     []Job{},
	}
}

// Equal reports whether both values refer to the same stored employer.
func (e *Employer) Equal(other *Employer) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Entity.Equal(&other.Entity)
}
