package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gartstein/techjobs/internal/techjobs/controller"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HomeHandler serves the job pages: the index, the add-job form and job
// details. It reads employers and skills to populate the form.
type HomeHandler struct {
	jobs      JobController
	employers EmployerController
	skills    SkillController
	logger    *zap.Logger
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(jobs JobController, employers EmployerController, skills SkillController, logger *zap.Logger) *HomeHandler {
	return &HomeHandler{
		jobs:      jobs,
		employers: employers,
		skills:    skills,
		logger:    logger.Named("home_handler"),
	}
}

// jobForm holds the submitted add-job fields for re-rendering.
type jobForm struct {
	Name       string
	EmployerID int
	SkillIDs   []int
}

// Index lists every job.
func (h *HomeHandler) Index(c *gin.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(http.StatusOK, "index", gin.H{
		"title": "My Jobs",
		"jobs":  jobs,
	})
}

// DisplayAddJobForm renders an empty add-job form listing every employer
// and skill.
func (h *HomeHandler) DisplayAddJobForm(c *gin.Context) {
	h.renderAddJobForm(c, http.StatusOK, jobForm{}, nil)
}

// ProcessAddJobForm creates a job from the submitted form. Invalid input
// re-renders the form with field messages.
func (h *HomeHandler) ProcessAddJobForm(c *gin.Context) {
	form := jobForm{
		Name:       strings.TrimSpace(c.PostForm("name")),
		EmployerID: atoiOrZero(c.PostForm("employerId")),
	}
	for _, raw := range c.PostFormArray("skills") {
		if id := atoiOrZero(raw); id > 0 {
			form.SkillIDs = append(form.SkillIDs, id)
		}
	}

	_, err := h.jobs.CreateJob(c.Request.Context(), controller.JobInput{
		Name:       form.Name,
		EmployerID: form.EmployerID,
		SkillIDs:   form.SkillIDs,
	})
	if fields, ok := fieldErrors(err); ok {
		h.renderAddJobForm(c, http.StatusBadRequest, form, fields)
		return
	}
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// DisplayViewJob renders one job, or the 404 page.
func (h *HomeHandler) DisplayViewJob(c *gin.Context) {
	id, ok := pathID(c, "jobId")
	if !ok {
		notFound(c)
		return
	}
	job, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(http.StatusOK, "view", gin.H{
		"title": "Job: " + job.Name,
		"job":   job,
	})
}

func (h *HomeHandler) renderAddJobForm(c *gin.Context, status int, form jobForm, fields e.FieldErrors) {
	ctx := c.Request.Context()
	employers, err := h.employers.ListEmployers(ctx)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	skills, err := h.skills.ListSkills(ctx)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(status, "add", gin.H{
		"title":     "Add Job",
		"form":      form,
		"errors":    fields,
		"employers": employers,
		"skills":    skills,
	})
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
