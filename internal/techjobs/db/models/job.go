package models

// Job is a row of the job table. It owns both the employer_id foreign key
// and the job_skills join rows.
type Job struct {
	ID         int      `gorm:"primaryKey;autoIncrement"`
	Name       string   `gorm:"size:80;not null"`
	EmployerID int      `gorm:"column:employer_id;not null;index"`
	Employer   Employer `gorm:"foreignKey:EmployerID"`
	Skills     []Skill  `gorm:"many2many:job_skills"`
}

func (Job) TableName() string { return "job" }

// All lists every row type in migration order.
func All() []interface{} {
	return []interface{}{&Employer{}, &Skill{}, &Job{}}
}
