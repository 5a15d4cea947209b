package handlers

import (
	"net/http"
	"strings"

	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmployerHandler serves the /employers pages.
type EmployerHandler struct {
	employers EmployerController
	logger    *zap.Logger
}

func NewEmployerHandler(employers EmployerController, logger *zap.Logger) *EmployerHandler {
	return &EmployerHandler{
		employers: employers,
		logger:    logger.Named("employer_handler"),
	}
}

func (h *EmployerHandler) Index(c *gin.Context) {
	employers, err := h.employers.ListEmployers(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(http.StatusOK, "employers/index", gin.H{
		"title":     "All Employers",
		"employers": employers,
	})
}

func (h *EmployerHandler) DisplayAddEmployerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "employers/add", gin.H{
		"title":    "Add Employer",
		"employer": models.NewEmployer("", ""),
	})
}

func (h *EmployerHandler) ProcessAddEmployerForm(c *gin.Context) {
	employer := models.NewEmployer(
		strings.TrimSpace(c.PostForm("name")),
		strings.TrimSpace(c.PostForm("location")),
	)
	_, err := h.employers.CreateEmployer(c.Request.Context(), employer)
	if fields, ok := fieldErrors(err); ok {
		c.HTML(http.StatusBadRequest, "employers/add", gin.H{
			"title":    "Add Employer",
			"employer": employer,
			"errors":   fields,
		})
		return
	}
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/employers/")
}

func (h *EmployerHandler) DisplayViewEmployer(c *gin.Context) {
	id, ok := pathID(c, "employerId")
	if !ok {
		notFound(c)
		return
	}
	employer, err := h.employers.GetEmployer(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(http.StatusOK, "employers/view", gin.H{
		"title":    "Employer: " + employer.Name,
		"employer": employer,
	})
}
