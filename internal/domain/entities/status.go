package entities

// EntityType names the record kinds known to the id generator, the status
// machine and the activity log.
type EntityType string

const (
	EntityProject          EntityType = "PROJECT"
	EntityEstimate         EntityType = "ESTIMATE"
	EntityCustomer         EntityType = "CUSTOMER"
	EntityVendor           EntityType = "VENDOR"
	EntitySubcontractor    EntityType = "SUBCONTRACTOR"
	EntityTimeLog          EntityType = "TIME_LOG"
	EntityMaterialsReceipt EntityType = "MATERIALS_RECEIPT"
	EntitySubInvoice       EntityType = "SUBINVOICE"
	EntityActivityLog      EntityType = "ACTIVITY_LOG"
	EntityFile             EntityType = "FILE"
)

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "PENDING"
	ProjectStatusApproved   ProjectStatus = "APPROVED"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusCanceled   ProjectStatus = "CANCELED"
	ProjectStatusClosed     ProjectStatus = "CLOSED"
)

type EstimateStatus string

const (
	EstimateStatusPending   EstimateStatus = "PENDING"
	EstimateStatusApproved  EstimateStatus = "APPROVED"
	EstimateStatusRejected  EstimateStatus = "REJECTED"
	EstimateStatusCompleted EstimateStatus = "COMPLETED"
	EstimateStatusCanceled  EstimateStatus = "CANCELED"
	EstimateStatusClosed    EstimateStatus = "CLOSED"
)

// CustomerStatus is not governed by a transition table; any listed value may
// be written.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
	CustomerStatusPending  CustomerStatus = "PENDING"
	CustomerStatusArchived CustomerStatus = "ARCHIVED"
)

var CustomerStatuses = []CustomerStatus{
	CustomerStatusActive, CustomerStatusInactive, CustomerStatusPending, CustomerStatusArchived,
}

func (s CustomerStatus) Valid() bool {
	for _, v := range CustomerStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "ACTIVE"
	VendorStatusInactive VendorStatus = "INACTIVE"
)
