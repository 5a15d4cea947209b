package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gartstein/techjobs/internal/techjobs/controller"
	e "github.com/gartstein/techjobs/internal/techjobs/errors"
	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIHandler exposes employers, skills and jobs as JSON under /api/v1.
type APIHandler struct {
	services Services
	logger   *zap.Logger
}

func NewAPIHandler(services Services, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		services: services,
		logger:   logger.Named("api_handler"),
	}
}

type employerRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type skillRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type jobRequest struct {
	Name       string `json:"name"`
	EmployerID int    `json:"employer_id"`
	SkillIDs   []int  `json:"skill_ids"`
}

// Register mounts the API routes on group.
func (h *APIHandler) Register(group *gin.RouterGroup) {
	group.GET("/jobs", h.ListJobs)
	group.GET("/jobs/:id", h.GetJob)
	group.POST("/jobs", h.CreateJob)
	group.DELETE("/jobs/:id", h.DeleteJob)

	group.GET("/employers", h.ListEmployers)
	group.GET("/employers/:id", h.GetEmployer)
	group.POST("/employers", h.CreateEmployer)
	group.DELETE("/employers/:id", h.DeleteEmployer)

	group.GET("/skills", h.ListSkills)
	group.GET("/skills/:id", h.GetSkill)
	group.POST("/skills", h.CreateSkill)
	group.DELETE("/skills/:id", h.DeleteSkill)
}

// ListJobs returns every job, or the jobs matching ?column=&value= when a
// value is given.
func (h *APIHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		jobs []models.Job
		err  error
	)
	if value, ok := c.GetQuery("value"); ok {
		jobs, err = h.services.Jobs.FindJobs(ctx, c.Query("column"), value)
	} else {
		jobs, err = h.services.Jobs.ListJobs(ctx)
	}
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *APIHandler) GetJob(c *gin.Context) {
	id, err := apiID(c)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	job, err := h.services.Jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *APIHandler) CreateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, h.logger, fmt.Errorf("%w: %v", e.ErrInvalidInput, err))
		return
	}
	job, err := h.services.Jobs.CreateJob(c.Request.Context(), controller.JobInput{
		Name:       req.Name,
		EmployerID: req.EmployerID,
		SkillIDs:   req.SkillIDs,
	})
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *APIHandler) DeleteJob(c *gin.Context) {
	h.delete(c, h.services.Jobs.DeleteJob)
}

func (h *APIHandler) ListEmployers(c *gin.Context) {
	employers, err := h.services.Employers.ListEmployers(c.Request.Context())
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employers)
}

func (h *APIHandler) GetEmployer(c *gin.Context) {
	id, err := apiID(c)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	employer, err := h.services.Employers.GetEmployer(c.Request.Context(), id)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employer)
}

func (h *APIHandler) CreateEmployer(c *gin.Context) {
	var req employerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, h.logger, fmt.Errorf("%w: %v", e.ErrInvalidInput, err))
		return
	}
	employer, err := h.services.Employers.CreateEmployer(c.Request.Context(), models.NewEmployer(req.Name, req.Location))
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, employer)
}

func (h *APIHandler) DeleteEmployer(c *gin.Context) {
	h.delete(c, h.services.Employers.DeleteEmployer)
}

func (h *APIHandler) ListSkills(c *gin.Context) {
	skills, err := h.services.Skills.ListSkills(c.Request.Context())
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *APIHandler) GetSkill(c *gin.Context) {
	id, err := apiID(c)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	skill, err := h.services.Skills.GetSkill(c.Request.Context(), id)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *APIHandler) CreateSkill(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, h.logger, fmt.Errorf("%w: %v", e.ErrInvalidInput, err))
		return
	}
	skill := models.NewSkill(req.Description)
	skill.Name = req.Name
	created, err := h.services.Skills.CreateSkill(c.Request.Context(), skill)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *APIHandler) DeleteSkill(c *gin.Context) {
	h.delete(c, h.services.Skills.DeleteSkill)
}

func (h *APIHandler) delete(c *gin.Context, remove func(ctx context.Context, id int) error) {
	id, err := apiID(c)
	if err != nil {
		jsonError(c, h.logger, err)
		return
	}
	if err := remove(c.Request.Context(), id); err != nil {
		jsonError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func apiID(c *gin.Context) (int, error) {
	id, ok := pathID(c, "id")
	if !ok {
		return 0, fmt.Errorf("%w: invalid id %q", e.ErrInvalidInput, c.Param("id"))
	}
	return id, nil
}
