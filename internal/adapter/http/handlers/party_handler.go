package handlers

import (
	"net/http"

	request "akc_operations/internal/adapter/http/dto/request"
	response "akc_operations/internal/adapter/http/dto/response"
	"akc_operations/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PartyHandler serves vendors and subcontractors.
type PartyHandler struct {
	usecase usecase.IPartyUseCase
}

func NewPartyHandler(uc usecase.IPartyUseCase) *PartyHandler {
	return &PartyHandler{usecase: uc}
}

func (h *PartyHandler) CreateVendor(c *gin.Context) {
	var payload request.CreateVendorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	vendor, err := h.usecase.CreateVendor(c.Request.Context(), payload.VendorName)
	if err != nil {
		respondError(c, "vendor", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(vendor))
}

func (h *PartyHandler) ListVendors(c *gin.Context) {
	vendors, err := h.usecase.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, "vendor", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(nonNil(vendors)))
}

func (h *PartyHandler) CreateSubcontractor(c *gin.Context) {
	var payload request.CreateSubcontractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	sub, err := h.usecase.CreateSubcontractor(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "subcontractor", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(sub))
}

func (h *PartyHandler) ListSubcontractors(c *gin.Context) {
	subs, err := h.usecase.ListSubcontractors(c.Request.Context())
	if err != nil {
		respondError(c, "subcontractor", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(nonNil(subs)))
}
