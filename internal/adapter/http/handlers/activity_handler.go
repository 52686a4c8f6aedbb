package handlers

import (
	"net/http"

	response "akc_operations/internal/adapter/http/dto/response"
	"akc_operations/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes the append-only activity log read-only.
type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

func (h *ActivityHandler) ListActivity(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context(), c.Query("module_type"), c.Query("reference_id"))
	if err != nil {
		respondError(c, "activity", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(nonNil(entries)))
}
