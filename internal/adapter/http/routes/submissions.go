package routes

import (
	"akc_operations/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVendors           = "/vendors"
	PathSubcontractors    = "/subcontractors"
	PathTimeLogs          = "/time-logs"
	PathMaterialsReceipts = "/materials-receipts"
	PathSubInvoices       = "/sub-invoices"
	PathUploads           = "/uploads"
	PathActivity          = "/activity"
)

func addPartyRoutes(rg *gin.RouterGroup, h *handlers.PartyHandler) {
	rg.POST(PathVendors, h.CreateVendor)
	rg.GET(PathVendors, h.ListVendors)
	rg.POST(PathSubcontractors, h.CreateSubcontractor)
	rg.GET(PathSubcontractors, h.ListSubcontractors)
}

func addSubmissionRoutes(rg *gin.RouterGroup, h *handlers.SubmissionHandler, uploads *handlers.UploadHandler) {
	rg.POST(PathTimeLogs, h.SubmitTimeLog)
	rg.PATCH(PathTimeLogs+"/:time_log_id", h.UpdateTimeLog)

	rg.POST(PathMaterialsReceipts, h.SubmitMaterialsReceipt)
	rg.GET(PathMaterialsReceipts, h.ListMaterialsReceipts)

	rg.POST(PathSubInvoices, h.SubmitSubInvoice)
	rg.GET(PathSubInvoices, h.ListSubInvoices)

	rg.POST(PathUploads, uploads.UploadReceiptFile)
}

func addActivityRoutes(rg *gin.RouterGroup, h *handlers.ActivityHandler) {
	rg.GET(PathActivity, h.ListActivity)
}
