package handlers

import (
	"net/http"
	"strings"

	"github.com/gartstein/techjobs/internal/techjobs/controller"
	"github.com/gartstein/techjobs/internal/techjobs/db"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListHandler serves /list and /search. Both look jobs up by column and
// value through JobController.FindJobs.
type ListHandler struct {
	jobs      JobController
	employers EmployerController
	skills    SkillController
	logger    *zap.Logger
}

func NewListHandler(jobs JobController, employers EmployerController, skills SkillController, logger *zap.Logger) *ListHandler {
	return &ListHandler{
		jobs:      jobs,
		employers: employers,
		skills:    skills,
		logger:    logger.Named("list_handler"),
	}
}

// List renders employers and skills as links into ListJobsByColumnAndValue.
func (h *ListHandler) List(c *gin.Context) {
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
	c.HTML(http.StatusOK, "list", gin.H{
		"title":     "List",
		"employers": employers,
		"skills":    skills,
	})
}

// ListJobsByColumnAndValue renders the jobs matching ?column=&value=.
func (h *ListHandler) ListJobsByColumnAndValue(c *gin.Context) {
	column := c.DefaultQuery("column", db.ColumnAll)
	value := c.DefaultQuery("value", db.ColumnAll)

	jobs, err := h.jobs.FindJobs(c.Request.Context(), column, value)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(http.StatusOK, "list/jobs", gin.H{
		"title": resultsTitle(column, value),
		"jobs":  jobs,
	})
}

// Search renders the empty search form.
func (h *ListHandler) Search(c *gin.Context) {
	c.HTML(http.StatusOK, "search", gin.H{
		"title":      "Search",
		"columns":    controller.SearchColumns,
		"searchType": db.ColumnAll,
		"searchTerm": "",
	})
}

// DisplaySearchResults runs the submitted search and renders the form again
// with the matching jobs below it.
func (h *ListHandler) DisplaySearchResults(c *gin.Context) {
	searchType := strings.ToLower(strings.TrimSpace(c.DefaultPostForm("searchType", db.ColumnAll)))
	searchTerm := strings.TrimSpace(c.PostForm("searchTerm"))

	data := gin.H{
		"title":      "Search",
		"columns":    controller.SearchColumns,
		"searchType": searchType,
		"searchTerm": searchTerm,
	}

	value := searchTerm
	if value == "" {
		value = db.ColumnAll
	}
	jobs, err := h.jobs.FindJobs(c.Request.Context(), searchType, value)
	if fields, ok := fieldErrors(err); ok {
		data["errors"] = fields
		c.HTML(http.StatusBadRequest, "search", data)
		return
	}
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	data["searched"] = true
	data["jobs"] = jobs
	data["resultsTitle"] = resultsTitle(searchType, value)
	c.HTML(http.StatusOK, "search", data)
}

func resultsTitle(column, value string) string {
	if strings.EqualFold(strings.TrimSpace(value), db.ColumnAll) {
		return "All Jobs"
	}
	return "Jobs with " + columnLabel(strings.ToLower(column)) + ": " + value
}
