package handlers

import (
	"net/http"

	request "akc_operations/internal/adapter/http/dto/request"
	response "akc_operations/internal/adapter/http/dto/response"
	"akc_operations/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles estimate creation, status changes and versioning.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate appends the estimate row and renders its document.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	doc, err := h.usecase.CreateAndSaveEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "estimate", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromEstimateDocument(doc)))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		respondError(c, "estimate", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(estimate))
}

func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	change, err := h.usecase.UpdateEstimateStatus(c.Request.Context(), c.Param("estimate_id"), payload.Status)
	if err != nil {
		respondError(c, "estimate", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromEstimateStatusChange(change)))
}

// LoadPreviousEstimateVersion returns the fields a new version starts from.
func (h *EstimateHandler) LoadPreviousEstimateVersion(c *gin.Context) {
	tmpl, err := h.usecase.LoadPreviousEstimateVersion(c.Request.Context(), c.Query("project_id"), c.Param("estimate_id"))
	if err != nil {
		respondError(c, "estimate", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromEstimateTemplate(tmpl)))
}
