package usecase

import (
	"errors"
	"testing"
	"time"

	"akc_operations/internal/domain/entities"
	mock_interfaces "akc_operations/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newSheetCustomerUseCase(t *testing.T) (*CustomerUseCase, *sheets, *recordingActivity) {
	s := newSheets(t)
	activity := &recordingActivity{}
	uc := NewCustomerUseCase(s.customers, s.projects, s.estimates, s.ids, activity)
	uc.now = fixedNow
	return uc, s, activity
}

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	ctx := actorCtx()

	t.Run("name required", func(t *testing.T) {
		uc, _, _ := newSheetCustomerUseCase(t)
		if _, err := uc.CreateCustomer(ctx, CreateCustomerInput{CustomerName: "  "}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("ids continue within the year", func(t *testing.T) {
		uc, s, activity := newSheetCustomerUseCase(t)
		s.seedCustomer(t, entities.Customer{CustomerID: "23-001", CustomerName: "Old"})
		s.seedCustomer(t, entities.Customer{CustomerID: "24-001", CustomerName: "Existing"})

		c, err := uc.CreateCustomer(ctx, CreateCustomerInput{CustomerName: " Acme Homes ", City: "Austin"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.CustomerID != "24-002" || c.CustomerName != "Acme Homes" || c.Status != entities.CustomerStatusActive {
			t.Fatalf("unexpected customer %+v", c)
		}
		if c.CreatedBy != testActor {
			t.Fatalf("expected actor %s, got %s", testActor, c.CreatedBy)
		}
		if acts := activity.actions(); len(acts) != 1 || acts[0] != entities.ActionCustomerCreated {
			t.Fatalf("expected CUSTOMER_CREATED, got %v", acts)
		}
	})

	t.Run("id generation failure is external", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		ids.EXPECT().NextID(gomock.Any(), entities.EntityCustomer, "").Return("", errors.New("sheet unavailable"))
		uc := NewCustomerUseCase(nil, nil, nil, ids, &recordingActivity{})

		_, err := uc.CreateCustomer(ctx, CreateCustomerInput{CustomerName: "Acme"})
		if !errors.Is(err, ErrExternalService) || err.Error() != "sheet unavailable" {
			t.Fatalf("expected external error, got %v", err)
		}
	})
}

func TestCustomerUseCase_GetCustomerDetails(t *testing.T) {
	ctx := actorCtx()
	uc, s, _ := newSheetCustomerUseCase(t)
	s.seedCustomer(t, entities.Customer{CustomerID: "24-001", CustomerName: "Acme"})
	s.seedProject(t, entities.Project{ProjectID: "PROJ-2403-001", CustomerID: "24-001", ProjectName: "A",
		Status: entities.ProjectStatusInProgress, CreatedOn: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	s.seedProject(t, entities.Project{ProjectID: "PROJ-2403-002", CustomerID: "24-001", ProjectName: "B",
		Status: entities.ProjectStatusCompleted, CreatedOn: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)})
	s.seedProject(t, entities.Project{ProjectID: "PROJ-2403-003", CustomerID: "24-002", ProjectName: "Other",
		Status: entities.ProjectStatusPending})
	for _, e := range []entities.Estimate{
		{EstimateID: "EST-PROJ-2403-001-1", ProjectID: "PROJ-2403-001", CustomerID: "24-001", Status: entities.EstimateStatusApproved, EstimateAmount: decimal.NewFromInt(1000)},
		{EstimateID: "EST-PROJ-2403-001-2", ProjectID: "PROJ-2403-001", CustomerID: "24-001", Status: entities.EstimateStatusRejected, EstimateAmount: decimal.NewFromInt(800)},
		{EstimateID: "EST-PROJ-2403-002-1", ProjectID: "PROJ-2403-002", CustomerID: "24-001", Status: entities.EstimateStatusApproved, EstimateAmount: decimal.NewFromInt(500)},
	} {
		if _, err := s.estimates.Create(ctx, e); err != nil {
			t.Fatalf("seed estimate: %v", err)
		}
	}

	d, err := uc.GetCustomerDetails(ctx, "24-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := d.Metrics
	if m.TotalProjects != 2 || m.ActiveProjects != 1 || m.CompletedProjects != 1 {
		t.Fatalf("unexpected project metrics %+v", m)
	}
	if m.TotalEstimates != 3 || m.ApprovedEstimates != 2 || !m.TotalApprovedAmount.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected estimate metrics %+v", m)
	}
	if m.ConversionRate.String() != "66.67" || m.AverageProjectValue.String() != "750" {
		t.Fatalf("unexpected rates %s %s", m.ConversionRate, m.AverageProjectValue)
	}
	if !m.LastActivity.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last activity %v", m.LastActivity)
	}

	if _, err := uc.GetCustomerDetails(ctx, "99-999"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerMetrics_NormalizesStatuses(t *testing.T) {
	projects := []entities.Project{
		{ProjectID: "P1", Status: "in_progress"},
		{ProjectID: "P2", Status: " Completed "},
		{ProjectID: "P3", Status: "pending"},
	}
	estimates := []entities.Estimate{
		{EstimateID: "E1", Status: "Approved ", EstimateAmount: decimal.NewFromInt(300)},
		{EstimateID: "E2", Status: "approved", EstimateAmount: decimal.NewFromInt(200)},
		{EstimateID: "E3", Status: "rejected", EstimateAmount: decimal.NewFromInt(900)},
	}

	m := customerMetrics(projects, estimates)
	if m.ActiveProjects != 1 || m.CompletedProjects != 1 {
		t.Fatalf("unexpected project metrics %+v", m)
	}
	if m.ApprovedEstimates != 2 || !m.TotalApprovedAmount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected estimate metrics %+v", m)
	}
}

func TestCustomerUseCase_UpdateCustomerStatus(t *testing.T) {
	ctx := actorCtx()
	uc, s, activity := newSheetCustomerUseCase(t)
	s.seedCustomer(t, entities.Customer{CustomerID: "24-001", CustomerName: "Acme"})

	if _, err := uc.UpdateCustomerStatus(ctx, "24-001", "DELETED"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	change, err := uc.UpdateCustomerStatus(ctx, "24-001", "archived")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if change.OldStatus != "ACTIVE" || change.NewStatus != "ARCHIVED" {
		t.Fatalf("unexpected change %+v", change)
	}
	c, _ := s.customers.GetByID(ctx, "24-001")
	if c.Status != entities.CustomerStatusArchived {
		t.Fatalf("expected persisted ARCHIVED, got %s", c.Status)
	}
	if ev := activity.events[0]; ev.Action != entities.ActionCustomerStatusChanged || ev.PreviousStatus != "ACTIVE" {
		t.Fatalf("unexpected activity %+v", ev)
	}
}
