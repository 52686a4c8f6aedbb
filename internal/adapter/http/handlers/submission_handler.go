package handlers

import (
	"net/http"

	request "akc_operations/internal/adapter/http/dto/request"
	response "akc_operations/internal/adapter/http/dto/response"
	"akc_operations/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves the child records filed against a project.
type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

func (h *SubmissionHandler) SubmitTimeLog(c *gin.Context) {
	var payload request.TimeLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	entry, err := h.usecase.SubmitTimeLog(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "time_log", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(entry))
}

func (h *SubmissionHandler) UpdateTimeLog(c *gin.Context) {
	var payload request.UpdateTimeLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	entry, err := h.usecase.UpdateTimeLog(c.Request.Context(), payload.ToInput(c.Param("time_log_id")))
	if err != nil {
		respondError(c, "time_log", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(entry))
}

func (h *SubmissionHandler) SubmitMaterialsReceipt(c *gin.Context) {
	var payload request.MaterialsReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	receipt, err := h.usecase.SubmitMaterialsReceipt(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "materials_receipt", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromMaterialsReceipt(receipt)))
}

func (h *SubmissionHandler) ListMaterialsReceipts(c *gin.Context) {
	receipts, err := h.usecase.ListMaterialsReceipts(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		respondError(c, "materials_receipt", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromMaterialsReceipts(receipts)))
}

func (h *SubmissionHandler) SubmitSubInvoice(c *gin.Context) {
	var payload request.SubInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	invoice, err := h.usecase.SubmitSubInvoice(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "sub_invoice", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromSubInvoice(invoice)))
}

func (h *SubmissionHandler) ListSubInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListSubInvoices(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		respondError(c, "sub_invoice", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSubInvoices(invoices)))
}
