package db

import (
	dbmodels "github.com/gartstein/techjobs/internal/techjobs/db/models"
	"github.com/gartstein/techjobs/internal/techjobs/models"
)

// Rows and domain values are converted in one direction per relation: the
// owning side (job.employer_id, job_skills) is written from a Job, inverse
// collections are only ever read back. Nested references are shallow copies.

func employerRef(row *dbmodels.Employer) *models.Employer {
	return &models.Employer{
		Entity:   models.Entity{ID: row.ID, Name: row.Name},
		Location: row.Location,
		Jobs:     []models.Job{},
	}
}

func employerFromRow(row *dbmodels.Employer) *models.Employer {
	employer := employerRef(row)
	for i := range row.Jobs {
		job := jobFromRow(&row.Jobs[i])
		job.Employer = employerRef(row)
		employer.Jobs = append(employer.Jobs, *job)
	}
	return employer
}

func employerToRow(employer *models.Employer) *dbmodels.Employer {
	return &dbmodels.Employer{
		ID:       employer.ID,
		Name:     employer.Name,
		Location: employer.Location,
	}
}

func skillRef(row *dbmodels.Skill) *models.Skill {
	return &models.Skill{
		Entity:      models.Entity{ID: row.ID, Name: row.Name},
		Description: row.Description,
		Jobs:        []models.Job{},
	}
}

func skillFromRow(row *dbmodels.Skill) *models.Skill {
	skill := skillRef(row)
	for i := range row.Jobs {
		skill.Jobs = append(skill.Jobs, *jobFromRow(&row.Jobs[i]))
	}
	return skill
}

func skillToRow(skill *models.Skill) *dbmodels.Skill {
	return &dbmodels.Skill{
		ID:          skill.ID,
		Name:        skill.Name,
		Description: skill.Description,
	}
}

func jobFromRow(row *dbmodels.Job) *models.Job {
	job := &models.Job{
		Entity: models.Entity{ID: row.ID, Name: row.Name},
		Skills: make([]models.Skill, 0, len(row.Skills)),
	}
	if row.Employer.ID != 0 {
		job.Employer = employerRef(&row.Employer)
	}
	for i := range row.Skills {
		job.Skills = append(job.Skills, *skillRef(&row.Skills[i]))
	}
	return job
}

// jobToRow only carries identities of the related rows so that saving a job
// never rewrites its employer or skills.
func jobToRow(job *models.Job) *dbmodels.Job {
	row := &dbmodels.Job{
		ID:     job.ID,
		Name:   job.Name,
		Skills: make([]dbmodels.Skill, 0, len(job.Skills)),
	}
	if job.Employer != nil {
		row.EmployerID = job.Employer.ID
	}
	for _, s := range job.Skills {
		row.Skills = append(row.Skills, dbmodels.Skill{ID: s.ID})
	}
	return row
}

func jobsFromRows(rows []dbmodels.Job) []models.Job {
	jobs := make([]models.Job, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, *jobFromRow(&rows[i]))
	}
	return jobs
}
