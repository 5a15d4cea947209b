package handlers

import (
	"fmt"

	"github.com/gartstein/techjobs/internal/techjobs/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine serving the HTML pages and the JSON API.
// Mutating API routes require a bearer token when jwtSecret is set.
func NewRouter(services Services, jwtSecret string, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), CorrelationID(), RequestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	home := NewHomeHandler(services.Jobs, services.Employers, services.Skills, logger)
	router.GET("/", home.Index)
	router.GET("/add", home.DisplayAddJobForm)
	router.POST("/add", home.ProcessAddJobForm)
	router.GET("/view/:jobId", home.DisplayViewJob)

	employers := NewEmployerHandler(services.Employers, logger)
	employerRoutes := router.Group("/employers")
	employerRoutes.GET("/", employers.Index)
	employerRoutes.GET("/add", employers.DisplayAddEmployerForm)
	employerRoutes.POST("/add", employers.ProcessAddEmployerForm)
	employerRoutes.GET("/view/:employerId", employers.DisplayViewEmployer)

	skills := NewSkillHandler(services.Skills, logger)
	skillRoutes := router.Group("/skills")
	skillRoutes.GET("/", skills.Index)
	skillRoutes.GET("/add", skills.DisplayAddSkillForm)
	skillRoutes.POST("/add", skills.ProcessAddSkillForm)
	skillRoutes.GET("/view/:skillId", skills.DisplayViewSkill)

	list := NewListHandler(services.Jobs, services.Employers, services.Skills, logger)
	router.GET("/list", list.List)
	router.GET("/list/jobs", list.ListJobsByColumnAndValue)
	router.GET("/search", list.Search)
	router.POST("/search/results", list.DisplaySearchResults)

	api := router.Group("/api/v1", auth.Middleware(jwtSecret))
	NewAPIHandler(services, logger).Register(api)

	router.NoRoute(notFound)
	return router, nil
}
