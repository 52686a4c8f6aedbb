package handlers

import (
	"net/http"

	request "akc_operations/internal/adapter/http/dto/request"
	response "akc_operations/internal/adapter/http/dto/response"
	"akc_operations/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves project creation, lookup and lifecycle endpoints.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	project, err := h.usecase.CreateProject(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(project))
}

func (h *ProjectHandler) CleanupProjectCreation(c *gin.Context) {
	intent, err := h.usecase.CleanupProjectCreation(c.Request.Context(), c.Param("intent_id"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromIntent(intent)))
}

func (h *ProjectHandler) ListIntents(c *gin.Context) {
	intents, err := h.usecase.ListIntents(c.Request.Context(), c.Query("state"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromIntents(intents)))
}

func (h *ProjectHandler) GetActiveProjects(c *gin.Context) {
	projects, err := h.usecase.GetActiveProjects(c.Request.Context())
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(nonNil(projects)))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(project))
}

func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	change, err := h.usecase.UpdateProjectStatus(c.Request.Context(), c.Param("project_id"), payload.Status)
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromProjectStatusChange(change)))
}

func (h *ProjectHandler) GetModuleVisibility(c *gin.Context) {
	visibility, err := h.usecase.GetModuleVisibility(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(visibility))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
