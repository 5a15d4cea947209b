// Package models contains the storage rows for techjobs, configured to work
// using GORM as the ORM. Table and column names match the schema the
// maintenance scripts in queries.sql are written against.
package models

// Employer is a row of the employer table. Jobs is only ever read.
type Employer struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:80;not null"`
	Location string `gorm:"size:100;not null"`
	Jobs     []Job  `gorm:"foreignKey:EmployerID;constraint:OnDelete:RESTRICT"`
}

func (Employer) TableName() string { return "employer" }
