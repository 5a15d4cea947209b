package models

// Skill is a named, described tag attachable to many jobs. Jobs is the
// inverse side of Job.Skills; change Job.Skills to alter the relation.
type Skill struct {
	Entity
	Description string `json:"description" validate:"notblank,max=200"`
	Jobs        []Job  `json:"jobs,omitempty"`
}

// NewSkill returns an unsaved skill with only a description. Name has to be
// set before the skill can be saved.
func NewSkill(description string) *Skill {
	return &Skill{
		Description: description,
		Jobs:        []Job{},
	}
}

// Equal reports whether both values refer to the same stored skill.
func (s *Skill) Equal(other *Skill) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Entity.Equal(&other.Entity)
}
