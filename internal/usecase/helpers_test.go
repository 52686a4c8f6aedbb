package usecase

import (
	"context"
	"testing"
	"time"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/repository"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/idgen"
	"akc_operations/internal/identity"
)

const testActor = "pm@akc.com"

func fixedNow() time.Time {
	return time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
}

func actorCtx() context.Context {
	return identity.WithActor(context.Background(), testActor)
}

// recordingActivity keeps every event instead of writing it.
type recordingActivity struct {
	events []ActivityEvent
}

func (r *recordingActivity) Record(_ context.Context, ev ActivityEvent) entities.ActivityLogEntry {
	r.events = append(r.events, ev)
	return entities.ActivityLogEntry{Action: ev.Action, ModuleType: ev.ModuleType, ReferenceID: ev.ReferenceID}
}

func (r *recordingActivity) actions() []entities.ActivityAction {
	out := make([]entities.ActivityAction, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

// sheets is a bootstrapped in-memory workbook with every repository wired.
type sheets struct {
	store          *tabular.MemStore
	projects       *repository.ProjectSheetRepository
	estimates      *repository.EstimateSheetRepository
	customers      *repository.CustomerSheetRepository
	vendors        *repository.VendorSheetRepository
	subcontractors *repository.SubcontractorSheetRepository
	timeLogs       *repository.TimeLogSheetRepository
	receipts       *repository.MaterialsReceiptSheetRepository
	subInvoices    *repository.SubInvoiceSheetRepository
	activity       *repository.ActivityLogSheetRepository
	intents        *repository.ProjectIntentSheetRepository
	ids            *idgen.Generator
}

func newSheets(t *testing.T) *sheets {
	t.Helper()
	store, err := tabular.NewMemStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	schemas := records.DefaultSchemas()
	if err := tabular.Bootstrap(context.Background(), store, schemas.All()...); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return &sheets{
		store:          store,
		projects:       repository.NewProjectSheetRepository(store, schemas.Projects),
		estimates:      repository.NewEstimateSheetRepository(store, schemas.Estimates),
		customers:      repository.NewCustomerSheetRepository(store, schemas.Customers),
		vendors:        repository.NewVendorSheetRepository(store, schemas.Vendors),
		subcontractors: repository.NewSubcontractorSheetRepository(store, schemas.Subcontractors),
		timeLogs:       repository.NewTimeLogSheetRepository(store, schemas.TimeLogs),
		receipts:       repository.NewMaterialsReceiptSheetRepository(store, schemas.MaterialsReceipts),
		subInvoices:    repository.NewSubInvoiceSheetRepository(store, schemas.SubInvoices),
		activity:       repository.NewActivityLogSheetRepository(store, schemas.ActivityLog),
		intents:        repository.NewProjectIntentSheetRepository(store, schemas.ProjectIntents),
		ids:            idgen.NewGenerator(repository.NewIDSource(store, schemas), idgen.WithClock(fixedNow)),
	}
}

func (s *sheets) seedCustomer(t *testing.T, c entities.Customer) entities.Customer {
	t.Helper()
	if c.Status == "" {
		c.Status = entities.CustomerStatusActive
	}
	created, err := s.customers.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return created
}

func (s *sheets) seedProject(t *testing.T, p entities.Project) entities.Project {
	t.Helper()
	if p.JobID == "" {
		p.JobID = p.ProjectID
	}
	created, err := s.projects.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return created
}
