package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/idgen"
	"akc_operations/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newStore(t *testing.T, schemas ...tabular.Schema) *tabular.MemStore {
	t.Helper()
	store, err := tabular.NewMemStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := tabular.Bootstrap(context.Background(), store, schemas...); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return store
}

func TestProjectSheetRepository(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	repo := NewProjectSheetRepository(newStore(t, schemas.Projects), schemas.Projects)

	p := entities.Project{
		ProjectID:   "PROJ-2403-001",
		CustomerID:  "24-001",
		ProjectName: "Kitchen remodel",
		Status:      entities.ProjectStatusPending,
		Folders:     entities.ProjectFolders{Root: "r", Estimates: "e", Materials: "m", SubInvoices: "s"},
		JobID:       "PROJ-2403-001",
		CreatedOn:   time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC),
		CreatedBy:   "pm@akc.com",
	}

	t.Run("create and get", func(t *testing.T) {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got, err := repo.GetByID(ctx, " PROJ-2403-001 ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ProjectName != p.ProjectName || got.Folders != p.Folders || !got.CreatedOn.Equal(p.CreatedOn) {
			t.Fatalf("expected %+v, got %+v", p, got)
		}
	})

	t.Run("missing id returns zero project", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "PROJ-0000-000")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ProjectID != "" {
			t.Fatalf("expected zero project, got %+v", got)
		}
	})

	t.Run("update status touches audit cells", func(t *testing.T) {
		at := time.Date(2024, 3, 8, 9, 30, 0, 0, time.UTC)
		got, err := repo.UpdateStatus(ctx, p.ProjectID, entities.ProjectStatusApproved, "ops@akc.com", at)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Status != entities.ProjectStatusApproved || got.LastModifiedBy != "ops@akc.com" || !got.LastModified.Equal(at) {
			t.Fatalf("unexpected project %+v", got)
		}
		reread, _ := repo.GetByID(ctx, p.ProjectID)
		if reread.Status != entities.ProjectStatusApproved {
			t.Fatalf("expected persisted status APPROVED, got %s", reread.Status)
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		other := p
		other.ProjectID, other.CustomerID = "PROJ-2403-002", "24-002"
		if _, err := repo.Create(ctx, other); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got, err := repo.ListByCustomerID(ctx, "24-002")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 1 || got[0].ProjectID != "PROJ-2403-002" {
			t.Fatalf("expected one project, got %+v", got)
		}
		all, _ := repo.List(ctx)
		if len(all) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(all))
		}
	})
}

func TestProjectSheetRepository_MissingTable(t *testing.T) {
	schemas := records.DefaultSchemas()
	repo := NewProjectSheetRepository(newStore(t), schemas.Projects)
	_, err := repo.List(context.Background())
	if !errors.Is(err, tabular.ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}

func TestEstimateSheetRepository(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	store := newStore(t)

	// Legacy sheet: status in the last column, no ContingencyAmount header.
	if _, err := store.CreateTable(ctx, "Estimates", []string{"EstimateID", "ProjectID", "CustomerID", "EstimateAmount", "Flag"}); err != nil {
		t.Fatalf("create table: %v", err)
	}
	table, _ := store.OpenTable(ctx, "Estimates")
	if _, err := table.AppendRow(ctx, []string{"EST-P-1", "P", "24-001", "100", "PENDING"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	repo := NewEstimateSheetRepository(store, schemas.Estimates)

	got, err := repo.GetByID(ctx, "EST-P-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != entities.EstimateStatusPending {
		t.Fatalf("expected status from last column, got %q", got.Status)
	}

	at := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	updated, err := repo.UpdateStatus(ctx, "EST-P-1", entities.EstimateStatusApproved, at)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != entities.EstimateStatusApproved {
		t.Fatalf("expected APPROVED, got %s", updated.Status)
	}
	snap, _ := tabular.ReadTable(ctx, store, "Estimates")
	if len(snap.Headers) != 5 {
		t.Fatalf("expected legacy headers unchanged, got %v", snap.Headers)
	}
	if snap.Rows[0][4] != "APPROVED" {
		t.Fatalf("expected status written to legacy column, got %q", snap.Rows[0])
	}

	e := entities.Estimate{
		EstimateID:        "EST-P-2",
		ProjectID:         "P",
		CustomerID:        "24-001",
		EstimateAmount:    decimal.RequireFromString("250.5"),
		ContingencyAmount: decimal.RequireFromString("25"),
		Status:            entities.EstimateStatusPending,
	}
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	list, err := repo.ListByProjectID(ctx, "P")
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 estimates, got %d (%v)", len(list), err)
	}
	if !list[1].EstimateAmount.Equal(e.EstimateAmount) || list[1].Status != entities.EstimateStatusPending {
		t.Fatalf("unexpected estimate %+v", list[1])
	}

	// The legacy sheet has no document columns; the update is a no-op.
	doc, err := repo.UpdateDocument(ctx, "EST-P-2", "http://docs/2", "doc-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.EstimateID != "EST-P-2" || doc.DocID != "" {
		t.Fatalf("unexpected estimate %+v", doc)
	}
}

func TestCustomerSheetRepository(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	repo := NewCustomerSheetRepository(newStore(t, schemas.Customers), schemas.Customers)

	for _, c := range []entities.Customer{
		{CustomerID: "24-001", CustomerName: "Acme", Status: entities.CustomerStatusActive},
		{CustomerID: "undefined", CustomerName: "Ghost"},
		{CustomerID: "24-002", CustomerName: " "},
	} {
		if _, err := repo.Create(ctx, c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 1 || list[0].CustomerID != "24-001" {
		t.Fatalf("expected only the valid customer, got %+v", list)
	}

	got, err := repo.UpdateStatus(ctx, "24-001", entities.CustomerStatusArchived)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != entities.CustomerStatusArchived {
		t.Fatalf("expected ARCHIVED, got %s", got.Status)
	}
	missing, _ := repo.UpdateStatus(ctx, "99-999", entities.CustomerStatusActive)
	if missing.CustomerID != "" {
		t.Fatalf("expected zero customer, got %+v", missing)
	}

	if _, err := repo.Create(ctx, entities.Customer{CustomerID: "24-003", CustomerName: "No status"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	blank, err := repo.GetByID(ctx, "24-003")
	if err != nil || blank.Status != entities.CustomerStatusActive {
		t.Fatalf("expected blank status to read ACTIVE, got %+v (%v)", blank, err)
	}
}

func TestTimeLogSheetRepository_Update(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	repo := NewTimeLogSheetRepository(newStore(t, schemas.TimeLogs), schemas.TimeLogs)

	tl := entities.TimeLog{TimeLogID: "TL1", ProjectID: "P", Date: "2024-03-07", StartTime: "08:00", EndTime: "12:00", Hours: 4, SubmittingUser: "pm@akc.com"}
	if _, err := repo.Create(ctx, tl); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	tl.EndTime, tl.Hours = "16:30", 8.5
	got, err := repo.Update(ctx, tl)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Hours != 8.5 || got.EndTime != "16:30" || got.SubmittingUser != "pm@akc.com" {
		t.Fatalf("unexpected time log %+v", got)
	}
}

func TestTimeLogSheetRepository_UpdateKeepsCellText(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	store := newStore(t, schemas.TimeLogs)
	repo := NewTimeLogSheetRepository(store, schemas.TimeLogs)

	l, err := tabular.Resolve(schemas.TimeLogs, schemas.TimeLogs.Headers())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	tl := entities.TimeLog{TimeLogID: "TL1", ProjectID: "P", Date: "2024-03-07", StartTime: "08:00", EndTime: "16:00", Hours: 8.5}
	row := records.TimeLogToRow(l, tl)
	l.Set(row, records.ColHours, "8.50")
	table, _ := store.OpenTable(ctx, schemas.TimeLogs.Table)
	if _, err := table.AppendRow(ctx, row); err != nil {
		t.Fatalf("append: %v", err)
	}

	tl.EndTime = "16:30"
	if _, err := repo.Update(ctx, tl); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	snap, _ := tabular.ReadTable(ctx, store, schemas.TimeLogs.Table)
	if got := l.Get(snap.Rows[0], records.ColHours); got != "8.50" {
		t.Fatalf("expected unchanged hours text 8.50, got %q", got)
	}
	if got := l.Get(snap.Rows[0], records.ColEndTime); got != "16:30" {
		t.Fatalf("expected end time 16:30, got %q", got)
	}
}

func TestActivityLogSheetRepository_List(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	repo := NewActivityLogSheetRepository(newStore(t, schemas.ActivityLog), schemas.ActivityLog)

	entries := []entities.ActivityLogEntry{
		{LogID: "LOG-1", Action: entities.ActionProjectCreated, ModuleType: entities.EntityProject, ReferenceID: "P1"},
		{LogID: "LOG-2", Action: entities.ActionEstimateCreated, ModuleType: entities.EntityEstimate, ReferenceID: "E1"},
		{LogID: "LOG-3", Action: entities.ActionProjectStatusChanged, ModuleType: entities.EntityProject, ReferenceID: "P2"},
	}
	for _, e := range entries {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	t.Run("by module", func(t *testing.T) {
		got, _ := repo.List(ctx, interfaces.ActivityFilter{ModuleType: entities.EntityProject})
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
	})
	t.Run("by module and reference", func(t *testing.T) {
		got, _ := repo.List(ctx, interfaces.ActivityFilter{ModuleType: entities.EntityProject, ReferenceID: "P2"})
		if len(got) != 1 || got[0].LogID != "LOG-3" {
			t.Fatalf("expected LOG-3, got %+v", got)
		}
	})
	t.Run("no filter", func(t *testing.T) {
		got, _ := repo.List(ctx, interfaces.ActivityFilter{})
		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(got))
		}
	})
}

func TestProjectIntentSheetRepository(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	repo := NewProjectIntentSheetRepository(newStore(t, schemas.ProjectIntents), schemas.ProjectIntents)

	in := entities.ProjectIntent{IntentID: "i-1", ProjectID: "P", State: entities.IntentStarted}
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	in.State = entities.IntentFoldersCreated
	in.Folders = entities.ProjectFolders{Root: "r", Estimates: "e", Materials: "m", SubInvoices: "s"}
	got, err := repo.Update(ctx, in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.State != entities.IntentFoldersCreated || got.Folders != in.Folders {
		t.Fatalf("unexpected intent %+v", got)
	}

	pending, _ := repo.ListByState(ctx, entities.IntentFoldersCreated)
	if len(pending) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(pending))
	}
	none, _ := repo.ListByState(ctx, entities.IntentCommitted)
	if len(none) != 0 {
		t.Fatalf("expected no committed intents, got %d", len(none))
	}
}

func TestIDSource(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	store := newStore(t, schemas.All()...)
	estimates := NewEstimateSheetRepository(store, schemas.Estimates)
	for _, e := range []entities.Estimate{
		{EstimateID: "EST-P1-1", ProjectID: "P1"},
		{EstimateID: "EST-P1-2", ProjectID: "P1"},
		{EstimateID: "EST-P2-1", ProjectID: "P2"},
	} {
		if _, err := estimates.Create(ctx, e); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	gen := idgen.NewGenerator(NewIDSource(store, schemas))
	id, err := gen.NextID(ctx, entities.EntityEstimate, "P1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "EST-P1-3" {
		t.Fatalf("expected EST-P1-3, got %s", id)
	}

	if _, err := NewIDSource(store, schemas).ExistingIDs(ctx, entities.EntityActivityLog); !errors.Is(err, idgen.ErrNoStrategy) {
		t.Fatalf("expected ErrNoStrategy, got %v", err)
	}
}

func TestIDSource_SequentialIDsIncrease(t *testing.T) {
	ctx := context.Background()
	schemas := records.DefaultSchemas()
	clock := func() time.Time { return time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC) }

	cases := []struct {
		name   string
		et     entities.EntityType
		scope  string
		prefix string
		seed   []string
		create func(ctx context.Context, store tabular.Store, id string) error
	}{
		{
			name:   "vendor",
			et:     entities.EntityVendor,
			prefix: "VEND-",
			seed:   []string{"VEND-007", "VEND-002", "VEND-011", "VEND-001", "VEND-004"},
			create: func(ctx context.Context, store tabular.Store, id string) error {
				_, err := NewVendorSheetRepository(store, schemas.Vendors).Create(ctx, entities.Vendor{VendorID: id, VendorName: "v"})
				return err
			},
		},
		{
			name:   "subcontractor",
			et:     entities.EntitySubcontractor,
			prefix: "Sub-",
			seed:   []string{"Sub-003", "Sub-010", "Sub-001", "Sub-006"},
			create: func(ctx context.Context, store tabular.Store, id string) error {
				_, err := NewSubcontractorSheetRepository(store, schemas.Subcontractors).Create(ctx, entities.Subcontractor{SubID: id, SubName: "s"})
				return err
			},
		},
		{
			name:   "estimate within project",
			et:     entities.EntityEstimate,
			scope:  "P1",
			prefix: "EST-P1-",
			seed:   []string{"EST-P1-3", "EST-P2-9", "EST-P1-10", "EST-P1-1", "EST-P2-12", "EST-P1-2"},
			create: func(ctx context.Context, store tabular.Store, id string) error {
				project := id[len("EST-") : strings.LastIndex(id, "-")]
				_, err := NewEstimateSheetRepository(store, schemas.Estimates).Create(ctx, entities.Estimate{EstimateID: id, ProjectID: project})
				return err
			},
		},
		{
			name:   "customer within year",
			et:     entities.EntityCustomer,
			prefix: "24-",
			seed:   []string{"24-005", "23-040", "24-001", "24-012", "23-002", "24-003"},
			create: func(ctx context.Context, store tabular.Store, id string) error {
				_, err := NewCustomerSheetRepository(store, schemas.Customers).Create(ctx, entities.Customer{CustomerID: id, CustomerName: "c"})
				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStore(t, schemas.All()...)
			for _, id := range tc.seed {
				if err := tc.create(ctx, store, id); err != nil {
					t.Fatalf("seed %s: %v", id, err)
				}
			}
			gen := idgen.NewGenerator(NewIDSource(store, schemas), idgen.WithClock(clock))

			seen := make(map[string]bool)
			last := 0
			for range 8 {
				id, err := gen.NextID(ctx, tc.et, tc.scope)
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if !strings.HasPrefix(id, tc.prefix) {
					t.Fatalf("expected prefix %s, got %s", tc.prefix, id)
				}
				n, err := strconv.Atoi(strings.TrimPrefix(id, tc.prefix))
				if err != nil {
					t.Fatalf("expected numeric suffix, got %s", id)
				}
				if seen[id] || n <= last {
					t.Fatalf("expected %s to be new and above %d", id, last)
				}
				seen[id], last = true, n
				if err := tc.create(ctx, store, id); err != nil {
					t.Fatalf("create %s: %v", id, err)
				}
			}
		})
	}
}
