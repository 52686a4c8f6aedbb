package usecase

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/money"
	"akc_operations/internal/domain/statemachine"
	"akc_operations/internal/identity"
	"akc_operations/internal/logging"
	"akc_operations/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// CreateEstimateInput carries the fields accepted by CreateAndSaveEstimate.
// CustomerID defaults to the project's customer.
type CreateEstimateInput struct {
	ProjectID         string
	CustomerID        string
	EstimateAmount    decimal.Decimal
	ContingencyAmount decimal.Decimal
	SiteLocation      entities.SiteLocation
	PONumber          string
	JobDescription    string
	LineItems         []entities.EstimateLineItem
}

// EstimateDocument identifies a saved estimate and its rendered document.
type EstimateDocument struct {
	EstimateID string
	DocURL     string
	DocID      string
}

// EstimateTemplate is the payload used to start a new version of an
// existing estimate.
type EstimateTemplate struct {
	ProjectID         string
	EstimateAmount    decimal.Decimal
	ContingencyAmount decimal.Decimal
	SiteLocation      entities.SiteLocation
}

// IEstimateUseCase exposes estimate operations:
//   - CreateAndSaveEstimate appends a PENDING row and renders its document
//   - UpdateEstimateStatus moves an estimate through its lifecycle
//   - LoadPreviousEstimateVersion prefills a new version
type IEstimateUseCase interface {
	CreateAndSaveEstimate(ctx context.Context, in CreateEstimateInput) (EstimateDocument, error)
	GetEstimate(ctx context.Context, id string) (entities.Estimate, error)
	UpdateEstimateStatus(ctx context.Context, id, status string) (StatusChange, error)
	LoadPreviousEstimateVersion(ctx context.Context, projectID, estimateID string) (EstimateTemplate, error)
}

type EstimateDependencies struct {
	Estimates interfaces.IEstimateRepository
	Projects  interfaces.IProjectRepository
	Customers interfaces.ICustomerRepository
	IDs       interfaces.IIDGenerator
	Renderer  interfaces.IDocumentRenderer
	Activity  IActivityLogger
	Machine   *statemachine.Machine
}

type EstimateSettings struct {
	TemplateID string
	FilePrefix string
}

type EstimateUseCase struct {
	EstimateDependencies
	settings EstimateSettings
	now      func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(deps EstimateDependencies, settings EstimateSettings) *EstimateUseCase {
	return &EstimateUseCase{
		EstimateDependencies: deps,
		settings:             settings,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimateUseCase) CreateAndSaveEstimate(ctx context.Context, in CreateEstimateInput) (EstimateDocument, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if err := requireFields(field{"projectId", in.ProjectID}); err != nil {
		return EstimateDocument{}, err
	}
	if in.EstimateAmount.IsNegative() || in.ContingencyAmount.IsNegative() {
		return EstimateDocument{}, invalid("Estimate amounts cannot be negative")
	}
	logger := logging.Component(ctx, "estimate", "usecase")

	project, err := findProject(ctx, u.Projects, in.ProjectID)
	if err != nil {
		return EstimateDocument{}, err
	}
	if in.CustomerID == "" {
		in.CustomerID = project.CustomerID
	}
	customer, err := u.Customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return EstimateDocument{}, external(serviceStorage, err)
	}
	if customer.CustomerID == "" {
		return EstimateDocument{}, ErrCustomerNotFound
	}

	status := entities.EstimateStatusPending
	if err := u.Machine.ValidateTransition(entities.EntityEstimate, "", string(status)); err != nil {
		return EstimateDocument{}, err
	}

	id, err := u.IDs.NextID(ctx, entities.EntityEstimate, project.ProjectID)
	if err != nil {
		return EstimateDocument{}, external(serviceStorage, err)
	}

	site := in.SiteLocation
	if site.IsZero() {
		site = project.SiteLocation
	}
	now := u.now()
	estimate := entities.Estimate{
		EstimateID:        id,
		ProjectID:         project.ProjectID,
		CustomerID:        in.CustomerID,
		DateCreated:       now,
		EstimateAmount:    in.EstimateAmount,
		ContingencyAmount: in.ContingencyAmount,
		CreatedBy:         identity.Actor(ctx),
		Status:            status,
		IsActive:          true,
		SiteLocation:      site,
	}
	if _, err := u.Estimates.Create(ctx, estimate); err != nil {
		return EstimateDocument{}, external(serviceStorage, err)
	}

	folderID := project.Folders.Estimates
	if folderID == "" {
		folderID = project.Folders.Root
	}
	doc, err := u.Renderer.Render(ctx, interfaces.DocumentRequest{
		TemplateID:   u.settings.TemplateID,
		FolderID:     folderID,
		Name:         documentName(u.settings.FilePrefix, id),
		Replacements: estimateReplacements(estimate, customer, in, now),
		LineItems:    in.LineItems,
	})
	if err != nil {
		logger.Error().Err(err).Str("estimate_id", id).Msg("estimate document rendering failed")
		return EstimateDocument{}, external(serviceTemplating, err)
	}

	if _, err := u.Estimates.UpdateDocument(ctx, id, doc.URL, doc.ID); err != nil {
		return EstimateDocument{}, external(serviceStorage, err)
	}

	u.Activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionEstimateCreated,
		ModuleType:  entities.EntityEstimate,
		ReferenceID: id,
		Status:      string(status),
		Details: map[string]any{
			"projectId":      project.ProjectID,
			"customerId":     in.CustomerID,
			"estimateAmount": in.EstimateAmount.StringFixed(2),
			"docUrl":         doc.URL,
		},
	})
	logger.Info().Str("estimate_id", id).Str("project_id", project.ProjectID).Msg("estimate created")
	return EstimateDocument{EstimateID: id, DocURL: doc.URL, DocID: doc.ID}, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if err := requireFields(field{"estimateId", id}); err != nil {
		return entities.Estimate{}, err
	}
	e, err := u.Estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, external(serviceStorage, err)
	}
	if e.EstimateID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) UpdateEstimateStatus(ctx context.Context, id, status string) (StatusChange, error) {
	if err := requireFields(field{"estimateId", id}, field{"status", status}); err != nil {
		return StatusChange{}, err
	}
	e, err := u.GetEstimate(ctx, id)
	if err != nil {
		return StatusChange{}, err
	}

	oldStatus := statemachine.Normalize(string(e.Status))
	newStatus := statemachine.Normalize(status)
	if err := u.Machine.ValidateTransition(entities.EntityEstimate, oldStatus, newStatus); err != nil {
		return StatusChange{}, err
	}

	updated, err := u.Estimates.UpdateStatus(ctx, e.EstimateID, entities.EstimateStatus(newStatus), u.now())
	if err != nil {
		return StatusChange{}, external(serviceStorage, err)
	}
	if updated.EstimateID == "" {
		return StatusChange{}, ErrEstimateNotFound
	}

	u.Activity.Record(ctx, ActivityEvent{
		Action:         entities.ActionEstimateStatusChanged,
		ModuleType:     entities.EntityEstimate,
		ReferenceID:    e.EstimateID,
		Status:         newStatus,
		PreviousStatus: oldStatus,
		Details:        map[string]any{"projectId": e.ProjectID, "oldStatus": oldStatus, "newStatus": newStatus},
	})
	return StatusChange{ID: e.EstimateID, OldStatus: oldStatus, NewStatus: newStatus}, nil
}

// LoadPreviousEstimateVersion returns the amounts and site of an existing
// estimate. A non-empty projectID must match the estimate's project.
func (u *EstimateUseCase) LoadPreviousEstimateVersion(ctx context.Context, projectID, estimateID string) (EstimateTemplate, error) {
	projectID = strings.TrimSpace(projectID)
	e, err := u.GetEstimate(ctx, estimateID)
	if err != nil {
		return EstimateTemplate{}, err
	}
	if projectID != "" && e.ProjectID != projectID {
		return EstimateTemplate{}, ErrEstimateNotFound
	}

	site := e.SiteLocation
	if site.IsZero() {
		p, err := u.Projects.GetByID(ctx, e.ProjectID)
		if err != nil {
			return EstimateTemplate{}, external(serviceStorage, err)
		}
		site = p.SiteLocation
	}
	return EstimateTemplate{
		ProjectID:         e.ProjectID,
		EstimateAmount:    e.EstimateAmount,
		ContingencyAmount: e.ContingencyAmount,
		SiteLocation:      site,
	}, nil
}

func documentName(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// estimateReplacements builds the placeholder map of the estimate template.
// Site fields fall back to the customer's address.
func estimateReplacements(e entities.Estimate, c entities.Customer, in CreateEstimateInput, now time.Time) map[string]string {
	site := e.SiteLocation
	if site.IsZero() {
		site = c.Location()
	}
	return map[string]string{
		"{{EstimateNumber}}":       e.EstimateID,
		"{{Date}}":                 now.Format("01/02/2006"),
		"{{CustomerName}}":         c.CustomerName,
		"{{CustomerAddress}}":      c.Address,
		"{{CustomerCityStateZip}}": cityStateZip(c.City, c.State, c.Zip),
		"{{SiteLocationAddress}}":  site.Address,
		"{{SiteLocationCity}}":     site.City,
		"{{SiteLocationState}}":    site.State,
		"{{SiteLocationZip}}":      site.Zip,
		"{{PONumber}}":             strings.TrimSpace(in.PONumber),
		"{{JobDescription}}":       strings.TrimSpace(in.JobDescription),
		"{{EstimateAmount}}":       money.FormatUSD(e.EstimateAmount),
		"{{ContingencyAmount}}":    money.FormatUSD(e.ContingencyAmount),
	}
}

func cityStateZip(city, state, zip string) string {
	out := strings.TrimSpace(city)
	if state = strings.TrimSpace(state); state != "" {
		if out != "" {
			out += ", "
		}
		out += state
	}
	if zip = strings.TrimSpace(zip); zip != "" {
		if out != "" {
			out += " "
		}
		out += zip
	}
	return out
}
