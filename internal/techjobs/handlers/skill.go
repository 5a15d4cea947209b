package handlers

import (
	"net/http"
	"strings"

	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SkillHandler serves the /skills pages.
type SkillHandler struct {
	skills SkillController
	logger *zap.Logger
}

func NewSkillHandler(skills SkillController, logger *zap.Logger) *SkillHandler {
	return &SkillHandler{
		skills: skills,
		logger: logger.Named("skill_handler"),
	}
}

func (h *SkillHandler) Index(c *gin.Context) {
	skills, err := h.skills.ListSkills(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(http.StatusOK, "skills/index", gin.H{
		"title":  "All Skills",
		"skills": skills,
	})
}

func (h *SkillHandler) DisplayAddSkillForm(c *gin.Context) {
	c.HTML(http.StatusOK, "skills/add", gin.H{
		"title": "Add Skill",
		"skill": models.NewSkill(""),
	})
}

func (h *SkillHandler) ProcessAddSkillForm(c *gin.Context) {
	skill := models.NewSkill(strings.TrimSpace(c.PostForm("description")))
	skill.Name = strings.TrimSpace(c.PostForm("name"))

	_, err := h.skills.CreateSkill(c.Request.Context(), skill)
	if fields, ok := fieldErrors(err); ok {
		c.HTML(http.StatusBadRequest, "skills/add", gin.H{
			"title":  "Add Skill",
			"skill":  skill,
			"errors": fields,
		})
		return
	}
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/skills/")
}

func (h *SkillHandler) DisplayViewSkill(c *gin.Context) {
	id, ok := pathID(c, "skillId")
	if !ok {
		notFound(c)
		return
	}
	skill, err := h.skills.GetSkill(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.HTML(http.StatusOK, "skills/view", gin.H{
		"title": "Skill: " + skill.Name,
		"skill": skill,
	})
}
