package usecase

//go:generate mockgen -source=customer_usecase.go -destination=../adapter/http/handlers/mocks/customer_usecase_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/statemachine"
	"akc_operations/internal/identity"
	"akc_operations/internal/logging"
	"akc_operations/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type CreateCustomerInput struct {
	CustomerName string
	Address      string
	City         string
	State        string
	Zip          string
	ContactEmail string
	Phone        string
}

// CustomerMetrics summarizes a customer's projects and estimates.
// ConversionRate is the percentage of estimates that were approved.
type CustomerMetrics struct {
	TotalProjects       int
	ActiveProjects      int
	CompletedProjects   int
	TotalEstimates      int
	ApprovedEstimates   int
	TotalApprovedAmount decimal.Decimal
	ConversionRate      decimal.Decimal
	AverageProjectValue decimal.Decimal
	LastActivity        time.Time
}

type CustomerDetails struct {
	Customer  entities.Customer
	Projects  []entities.Project
	Estimates []entities.Estimate
	Metrics   CustomerMetrics
}

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	GetCustomerDetails(ctx context.Context, id string) (CustomerDetails, error)
	UpdateCustomerStatus(ctx context.Context, id, status string) (StatusChange, error)
}

type CustomerUseCase struct {
	customers interfaces.ICustomerRepository
	projects  interfaces.IProjectRepository
	estimates interfaces.IEstimateRepository
	ids       interfaces.IIDGenerator
	activity  IActivityLogger
	now       func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(
	customers interfaces.ICustomerRepository,
	projects interfaces.IProjectRepository,
	estimates interfaces.IEstimateRepository,
	ids interfaces.IIDGenerator,
	activity IActivityLogger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customers: customers,
		projects:  projects,
		estimates: estimates,
		ids:       ids,
		activity:  activity,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	name := strings.TrimSpace(in.CustomerName)
	if err := requireFields(field{"customerName", name}); err != nil {
		return entities.Customer{}, err
	}

	id, err := u.ids.NextID(ctx, entities.EntityCustomer, "")
	if err != nil {
		return entities.Customer{}, external(serviceStorage, err)
	}

	c := entities.Customer{
		CustomerID:   id,
		CustomerName: name,
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		Zip:          strings.TrimSpace(in.Zip),
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		Phone:        strings.TrimSpace(in.Phone),
		CreatedOn:    u.now(),
		CreatedBy:    identity.Actor(ctx),
		Status:       entities.CustomerStatusActive,
	}
	created, err := u.customers.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, external(serviceStorage, err)
	}

	u.activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionCustomerCreated,
		ModuleType:  entities.EntityCustomer,
		ReferenceID: id,
		Status:      string(c.Status),
		Details:     map[string]any{"customerName": name},
	})
	logging.Component(ctx, "customer", "usecase").Info().Str("customer_id", id).Msg("customer created")
	return created, nil
}

func (u *CustomerUseCase) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	return customers, nil
}

func (u *CustomerUseCase) GetCustomerDetails(ctx context.Context, id string) (CustomerDetails, error) {
	c, err := u.findCustomer(ctx, id)
	if err != nil {
		return CustomerDetails{}, err
	}

	projects, err := u.projects.ListByCustomerID(ctx, c.CustomerID)
	if err != nil {
		return CustomerDetails{}, external(serviceStorage, err)
	}
	estimates, err := u.estimates.ListByCustomerID(ctx, c.CustomerID)
	if err != nil {
		return CustomerDetails{}, external(serviceStorage, err)
	}

	return CustomerDetails{
		Customer:  c,
		Projects:  projects,
		Estimates: estimates,
		Metrics:   customerMetrics(projects, estimates),
	}, nil
}

// UpdateCustomerStatus writes any listed customer status; customers have no
// transition table.
func (u *CustomerUseCase) UpdateCustomerStatus(ctx context.Context, id, status string) (StatusChange, error) {
	if err := requireFields(field{"customerId", id}, field{"status", status}); err != nil {
		return StatusChange{}, err
	}
	next := entities.CustomerStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !next.Valid() {
		return StatusChange{}, invalid("Invalid customer status: %s", status)
	}

	c, err := u.findCustomer(ctx, id)
	if err != nil {
		return StatusChange{}, err
	}
	updated, err := u.customers.UpdateStatus(ctx, c.CustomerID, next)
	if err != nil {
		return StatusChange{}, external(serviceStorage, err)
	}
	if updated.CustomerID == "" {
		return StatusChange{}, ErrCustomerNotFound
	}

	u.activity.Record(ctx, ActivityEvent{
		Action:         entities.ActionCustomerStatusChanged,
		ModuleType:     entities.EntityCustomer,
		ReferenceID:    c.CustomerID,
		Status:         string(next),
		PreviousStatus: string(c.Status),
		Details:        map[string]any{"customerName": c.CustomerName},
	})
	return StatusChange{ID: c.CustomerID, OldStatus: string(c.Status), NewStatus: string(next)}, nil
}

func (u *CustomerUseCase) findCustomer(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if err := requireFields(field{"customerId", id}); err != nil {
		return entities.Customer{}, err
	}
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, external(serviceStorage, err)
	}
	if c.CustomerID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

var hundred = decimal.NewFromInt(100)

func customerMetrics(projects []entities.Project, estimates []entities.Estimate) CustomerMetrics {
	m := CustomerMetrics{
		TotalProjects:  len(projects),
		TotalEstimates: len(estimates),
	}
	for _, p := range projects {
		switch entities.ProjectStatus(statemachine.Normalize(string(p.Status))) {
		case entities.ProjectStatusInProgress:
			m.ActiveProjects++
		case entities.ProjectStatusCompleted:
			m.CompletedProjects++
		}
		if p.CreatedOn.After(m.LastActivity) {
			m.LastActivity = p.CreatedOn
		}
	}
	for _, e := range estimates {
		if entities.EstimateStatus(statemachine.Normalize(string(e.Status))) == entities.EstimateStatusApproved {
			m.ApprovedEstimates++
			m.TotalApprovedAmount = m.TotalApprovedAmount.Add(e.EstimateAmount)
		}
	}
	if m.TotalEstimates > 0 {
		m.ConversionRate = decimal.NewFromInt(int64(m.ApprovedEstimates)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(m.TotalEstimates))).
			Round(2)
	}
	if m.TotalProjects > 0 {
		m.AverageProjectValue = m.TotalApprovedAmount.Div(decimal.NewFromInt(int64(m.TotalProjects))).Round(2)
	}
	return m
}
