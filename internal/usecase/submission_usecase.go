package usecase

//go:generate mockgen -source=submission_usecase.go -destination=../adapter/http/handlers/mocks/submission_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
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

// Accepted clock formats for time log start and end times.
var timeOfDayLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3:04 pm", "3:04pm"}

type TimeLogInput struct {
	ProjectID    string
	Date         string
	StartTime    string
	EndTime      string
	ForUserEmail string
}

// UpdateTimeLogInput replaces the non-blank fields of a stored time log.
type UpdateTimeLogInput struct {
	TimeLogID    string
	Date         string
	StartTime    string
	EndTime      string
	ForUserEmail string
}

type MaterialsReceiptInput struct {
	ProjectID     string
	VendorID      string
	VendorName    string
	Amount        decimal.Decimal
	ReceiptDocURL string
	DocID         string
	ForUserEmail  string
}

type SubInvoiceInput struct {
	ProjectID     string
	ProjectName   string
	SubID         string
	SubName       string
	InvoiceAmount decimal.Decimal
	InvoiceDocURL string
	DocID         string
}

// ISubmissionUseCase records the child records of a project. Every write is
// refused unless the project is APPROVED or IN_PROGRESS.
type ISubmissionUseCase interface {
	SubmitTimeLog(ctx context.Context, in TimeLogInput) (entities.TimeLog, error)
	UpdateTimeLog(ctx context.Context, in UpdateTimeLogInput) (entities.TimeLog, error)
	SubmitMaterialsReceipt(ctx context.Context, in MaterialsReceiptInput) (entities.MaterialsReceipt, error)
	ListMaterialsReceipts(ctx context.Context, projectID string) ([]entities.MaterialsReceipt, error)
	SubmitSubInvoice(ctx context.Context, in SubInvoiceInput) (entities.SubInvoice, error)
	ListSubInvoices(ctx context.Context, projectID string) ([]entities.SubInvoice, error)
}

type SubmissionDependencies struct {
	Projects    interfaces.IProjectRepository
	TimeLogs    interfaces.ITimeLogRepository
	Receipts    interfaces.IMaterialsReceiptRepository
	SubInvoices interfaces.ISubInvoiceRepository
	IDs         interfaces.IIDGenerator
	Activity    IActivityLogger
}

type SubmissionUseCase struct {
	SubmissionDependencies
	now func() time.Time
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(deps SubmissionDependencies) *SubmissionUseCase {
	return &SubmissionUseCase{
		SubmissionDependencies: deps,
		now:                    func() time.Time { return time.Now().UTC() },
	}
}

func (u *SubmissionUseCase) SubmitTimeLog(ctx context.Context, in TimeLogInput) (entities.TimeLog, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.Date = strings.TrimSpace(in.Date)
	if err := requireFields(
		field{"date", in.Date},
		field{"startTime", in.StartTime},
		field{"endTime", in.EndTime},
		field{"projectId", in.ProjectID},
	); err != nil {
		return entities.TimeLog{}, err
	}
	hours, err := hoursBetween(in.StartTime, in.EndTime)
	if err != nil {
		return entities.TimeLog{}, err
	}
	if _, err := u.requireModuleAccess(ctx, in.ProjectID); err != nil {
		return entities.TimeLog{}, err
	}

	id, err := u.IDs.NextID(ctx, entities.EntityTimeLog, "")
	if err != nil {
		return entities.TimeLog{}, external(serviceStorage, err)
	}
	actor := identity.Actor(ctx)
	tl, err := u.TimeLogs.Create(ctx, entities.TimeLog{
		TimeLogID:      id,
		ProjectID:      in.ProjectID,
		Date:           in.Date,
		StartTime:      strings.TrimSpace(in.StartTime),
		EndTime:        strings.TrimSpace(in.EndTime),
		Hours:          hours,
		SubmittingUser: actor,
		ForUserEmail:   strings.TrimSpace(in.ForUserEmail),
		SubmittedOn:    u.now(),
	})
	if err != nil {
		return entities.TimeLog{}, external(serviceStorage, err)
	}

	forUser := tl.ForUserEmail
	if forUser == "" {
		forUser = actor
	}
	u.Activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionTimeLogCreated,
		ModuleType:  entities.EntityTimeLog,
		ReferenceID: id,
		Details: map[string]any{
			"projectId":    in.ProjectID,
			"date":         in.Date,
			"hours":        hours,
			"forUserEmail": forUser,
		},
	})
	logging.Component(ctx, "time_log", "usecase").Info().Str("time_log_id", id).Float64("hours", hours).Msg("time log submitted")
	return tl, nil
}

func (u *SubmissionUseCase) UpdateTimeLog(ctx context.Context, in UpdateTimeLogInput) (entities.TimeLog, error) {
	in.TimeLogID = strings.TrimSpace(in.TimeLogID)
	if err := requireFields(field{"timeLogId", in.TimeLogID}); err != nil {
		return entities.TimeLog{}, err
	}

	current, err := u.TimeLogs.GetByID(ctx, in.TimeLogID)
	if err != nil {
		return entities.TimeLog{}, external(serviceStorage, err)
	}
	if current.TimeLogID == "" {
		return entities.TimeLog{}, ErrTimeLogNotFound
	}

	next := current
	if v := strings.TrimSpace(in.Date); v != "" {
		next.Date = v
	}
	if v := strings.TrimSpace(in.StartTime); v != "" {
		next.StartTime = v
	}
	if v := strings.TrimSpace(in.EndTime); v != "" {
		next.EndTime = v
	}
	if v := strings.TrimSpace(in.ForUserEmail); v != "" {
		next.ForUserEmail = v
	}
	if next.Hours, err = hoursBetween(next.StartTime, next.EndTime); err != nil {
		return entities.TimeLog{}, err
	}
	if _, err := u.requireModuleAccess(ctx, current.ProjectID); err != nil {
		return entities.TimeLog{}, err
	}

	updated, err := u.TimeLogs.Update(ctx, next)
	if err != nil {
		return entities.TimeLog{}, external(serviceStorage, err)
	}
	if updated.TimeLogID == "" {
		return entities.TimeLog{}, ErrTimeLogNotFound
	}

	u.Activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionTimeLogUpdated,
		ModuleType:  entities.EntityTimeLog,
		ReferenceID: updated.TimeLogID,
		Details: map[string]any{
			"projectId":     updated.ProjectID,
			"date":          updated.Date,
			"hours":         updated.Hours,
			"previousHours": current.Hours,
		},
	})
	return updated, nil
}

func (u *SubmissionUseCase) SubmitMaterialsReceipt(ctx context.Context, in MaterialsReceiptInput) (entities.MaterialsReceipt, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.VendorID = strings.TrimSpace(in.VendorID)
	in.VendorName = strings.TrimSpace(in.VendorName)
	if err := requireFields(
		field{"projectId", in.ProjectID},
		field{"vendorId", in.VendorID},
		field{"vendorName", in.VendorName},
	); err != nil {
		return entities.MaterialsReceipt{}, err
	}
	if !in.Amount.IsPositive() {
		return entities.MaterialsReceipt{}, invalid("Amount must be a positive number")
	}
	if _, err := u.requireModuleAccess(ctx, in.ProjectID); err != nil {
		return entities.MaterialsReceipt{}, err
	}

	id, err := u.IDs.NextID(ctx, entities.EntityMaterialsReceipt, "")
	if err != nil {
		return entities.MaterialsReceipt{}, external(serviceStorage, err)
	}
	m, err := u.Receipts.Create(ctx, entities.MaterialsReceipt{
		ReceiptID:      id,
		ProjectID:      in.ProjectID,
		VendorID:       in.VendorID,
		VendorName:     in.VendorName,
		Amount:         in.Amount,
		ReceiptDocURL:  strings.TrimSpace(in.ReceiptDocURL),
		DocID:          strings.TrimSpace(in.DocID),
		SubmittingUser: identity.Actor(ctx),
		ForUserEmail:   strings.TrimSpace(in.ForUserEmail),
		SubmittedOn:    u.now(),
	})
	if err != nil {
		return entities.MaterialsReceipt{}, external(serviceStorage, err)
	}

	u.Activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionMaterialsReceiptCreated,
		ModuleType:  entities.EntityMaterialsReceipt,
		ReferenceID: id,
		Details: map[string]any{
			"projectId":     in.ProjectID,
			"vendorId":      in.VendorID,
			"vendorName":    in.VendorName,
			"amount":        money.FormatUSD(in.Amount),
			"receiptDocUrl": m.ReceiptDocURL,
		},
	})
	return m, nil
}

func (u *SubmissionUseCase) ListMaterialsReceipts(ctx context.Context, projectID string) ([]entities.MaterialsReceipt, error) {
	p, err := findProject(ctx, u.Projects, projectID)
	if err != nil {
		return nil, err
	}
	out, err := u.Receipts.ListByProjectID(ctx, p.ProjectID)
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	return out, nil
}

// SubmitSubInvoice records a subcontractor invoice. A blank project name is
// taken from the project.
func (u *SubmissionUseCase) SubmitSubInvoice(ctx context.Context, in SubInvoiceInput) (entities.SubInvoice, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.SubID = strings.TrimSpace(in.SubID)
	in.SubName = strings.TrimSpace(in.SubName)
	if err := requireFields(
		field{"projectId", in.ProjectID},
		field{"subId", in.SubID},
		field{"subName", in.SubName},
	); err != nil {
		return entities.SubInvoice{}, err
	}
	if !in.InvoiceAmount.IsPositive() {
		return entities.SubInvoice{}, invalid("Invoice amount must be a positive number")
	}
	p, err := u.requireModuleAccess(ctx, in.ProjectID)
	if err != nil {
		return entities.SubInvoice{}, err
	}
	projectName := strings.TrimSpace(in.ProjectName)
	if projectName == "" {
		projectName = p.ProjectName
	}

	id, err := u.IDs.NextID(ctx, entities.EntitySubInvoice, "")
	if err != nil {
		return entities.SubInvoice{}, external(serviceStorage, err)
	}
	s, err := u.SubInvoices.Create(ctx, entities.SubInvoice{
		InvoiceID:      id,
		ProjectID:      in.ProjectID,
		ProjectName:    projectName,
		SubID:          in.SubID,
		SubName:        in.SubName,
		InvoiceAmount:  in.InvoiceAmount,
		InvoiceDocURL:  strings.TrimSpace(in.InvoiceDocURL),
		DocID:          strings.TrimSpace(in.DocID),
		SubmittingUser: identity.Actor(ctx),
		SubmittedOn:    u.now(),
	})
	if err != nil {
		return entities.SubInvoice{}, external(serviceStorage, err)
	}

	u.Activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionSubInvoiceCreated,
		ModuleType:  entities.EntitySubInvoice,
		ReferenceID: id,
		Details: map[string]any{
			"projectId":     in.ProjectID,
			"projectName":   projectName,
			"subId":         in.SubID,
			"subName":       in.SubName,
			"invoiceAmount": money.FormatUSD(in.InvoiceAmount),
			"invoiceDocUrl": s.InvoiceDocURL,
		},
	})
	return s, nil
}

func (u *SubmissionUseCase) ListSubInvoices(ctx context.Context, projectID string) ([]entities.SubInvoice, error) {
	p, err := findProject(ctx, u.Projects, projectID)
	if err != nil {
		return nil, err
	}
	out, err := u.SubInvoices.ListByProjectID(ctx, p.ProjectID)
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	return out, nil
}

func (u *SubmissionUseCase) requireModuleAccess(ctx context.Context, projectID string) (entities.Project, error) {
	p, err := findProject(ctx, u.Projects, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if !statemachine.ModuleAccessAllowed(p.Status) {
		return entities.Project{}, fmt.Errorf("project %s is %s: %w", p.ProjectID, p.Status, ErrModuleAccessDenied)
	}
	return p, nil
}

// hoursBetween returns end - start in hours rounded to two decimals.
func hoursBetween(start, end string) (float64, error) {
	from, err := parseTimeOfDay(start)
	if err != nil {
		return 0, invalid("Invalid start time: %s", start)
	}
	to, err := parseTimeOfDay(end)
	if err != nil {
		return 0, invalid("Invalid end time: %s", end)
	}
	hours := decimal.NewFromFloat(to.Sub(from).Hours()).Round(2)
	if !hours.IsPositive() {
		return 0, invalid("End time must be after start time")
	}
	return hours.InexactFloat64(), nil
}

func parseTimeOfDay(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	var err error
	for _, layout := range timeOfDayLayouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
