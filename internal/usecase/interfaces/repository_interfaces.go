package interfaces

//go:generate mockgen -source=repository_interfaces.go -destination=mocks/repository_interfaces_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"akc_operations/internal/domain/entities"
)

// Repositories return the zero value (empty id) and a nil error when the
// requested record does not exist.

// IProjectRepository abstracts the Projects sheet.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus, actor string, at time.Time) (entities.Project, error)
}

// IEstimateRepository abstracts the Estimates sheet.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus, at time.Time) (entities.Estimate, error)
	UpdateDocument(ctx context.Context, id, docURL, docID string) (entities.Estimate, error)
}

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) (entities.Customer, error)
}

type IVendorRepository interface {
	Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
}

type ISubcontractorRepository interface {
	Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error)
	GetByID(ctx context.Context, id string) (entities.Subcontractor, error)
	List(ctx context.Context) ([]entities.Subcontractor, error)
}

type ITimeLogRepository interface {
	Create(ctx context.Context, t entities.TimeLog) (entities.TimeLog, error)
	GetByID(ctx context.Context, id string) (entities.TimeLog, error)
	// Update rewrites the date, times, hours and target user of a stored log.
	Update(ctx context.Context, t entities.TimeLog) (entities.TimeLog, error)
}

type IMaterialsReceiptRepository interface {
	Create(ctx context.Context, m entities.MaterialsReceipt) (entities.MaterialsReceipt, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.MaterialsReceipt, error)
}

type ISubInvoiceRepository interface {
	Create(ctx context.Context, s entities.SubInvoice) (entities.SubInvoice, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.SubInvoice, error)
}

// ActivityFilter narrows activity listings; empty fields match everything.
type ActivityFilter struct {
	ModuleType  entities.EntityType
	ReferenceID string
}

// IActivityLogRepository is append-only.
type IActivityLogRepository interface {
	Append(ctx context.Context, e entities.ActivityLogEntry) error
	List(ctx context.Context, filter ActivityFilter) ([]entities.ActivityLogEntry, error)
}

type IProjectIntentRepository interface {
	Create(ctx context.Context, in entities.ProjectIntent) (entities.ProjectIntent, error)
	GetByID(ctx context.Context, id string) (entities.ProjectIntent, error)
	// Update rewrites state, folders, error and update time.
	Update(ctx context.Context, in entities.ProjectIntent) (entities.ProjectIntent, error)
	ListByState(ctx context.Context, state entities.IntentState) ([]entities.ProjectIntent, error)
}

// IIDGenerator issues the next identifier for an entity type.
type IIDGenerator interface {
	NextID(ctx context.Context, et entities.EntityType, scope string) (string, error)
}
