package entities

import (
	"encoding/json"
	"time"
)

// ActivityAction enumerates the audit events written to the ActivityLog sheet.
type ActivityAction string

const (
	ActionProjectCreated             ActivityAction = "PROJECT_CREATED"
	ActionProjectStatusChanged       ActivityAction = "PROJECT_STATUS_CHANGED"
	ActionProjectCreationCompensated ActivityAction = "PROJECT_CREATION_COMPENSATED"
	ActionEstimateCreated            ActivityAction = "ESTIMATE_CREATED"
	ActionEstimateStatusChanged      ActivityAction = "ESTIMATE_STATUS_CHANGED"
	ActionCustomerCreated            ActivityAction = "CUSTOMER_CREATED"
	ActionCustomerStatusChanged      ActivityAction = "CUSTOMER_STATUS_CHANGED"
	ActionVendorCreated              ActivityAction = "VENDOR_CREATED"
	ActionSubcontractorCreated       ActivityAction = "SUBCONTRACTOR_CREATED"
	ActionTimeLogCreated             ActivityAction = "TIME_LOG_CREATED"
	ActionTimeLogUpdated             ActivityAction = "TIME_LOG_UPDATED"
	ActionMaterialsReceiptCreated    ActivityAction = "MATERIALS_RECEIPT_CREATED"
	ActionSubInvoiceCreated          ActivityAction = "SUBINVOICE_CREATED"
	ActionFileUploaded               ActivityAction = "FILE_UPLOADED"
)

// ActivityLogEntry is an append-only audit row. Entries are never modified.
type ActivityLogEntry struct {
	LogID          string          `json:"logId"`
	Timestamp      time.Time       `json:"timestamp"`
	Action         ActivityAction  `json:"action"`
	UserEmail      string          `json:"userEmail"`
	ModuleType     EntityType      `json:"moduleType"`
	ReferenceID    string          `json:"referenceId"`
	Details        json.RawMessage `json:"details,omitempty"`
	Status         string          `json:"status,omitempty"`
	PreviousStatus string          `json:"previousStatus,omitempty"`
}
