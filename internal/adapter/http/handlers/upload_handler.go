package handlers

import (
	"net/http"

	request "akc_operations/internal/adapter/http/dto/request"
	response "akc_operations/internal/adapter/http/dto/response"
	"akc_operations/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// UploadReceiptFile stores a data-URL encoded receipt or invoice scan.
func (h *UploadHandler) UploadReceiptFile(c *gin.Context) {
	var payload request.UploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	file, err := h.usecase.UploadReceiptFile(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "upload", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(file))
}
