package models

// Skill is a row of the skill table. Jobs is the back-reference of
// Job.Skills over the same join table.
type Skill struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:80;not null"`
	Description string `gorm:"size:200;not null"`
	Jobs        []Job  `gorm:"many2many:job_skills"`
}

func (Skill) TableName() string { return "skill" }
