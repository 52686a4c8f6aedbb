package repository

import (
	"context"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"
)

type TimeLogSheetRepository struct {
	sheet
}

var _ interfaces.ITimeLogRepository = (*TimeLogSheetRepository)(nil)

func NewTimeLogSheetRepository(store tabular.Store, schema tabular.Schema) *TimeLogSheetRepository {
	return &TimeLogSheetRepository{sheet{store: store, schema: schema}}
}

func (r *TimeLogSheetRepository) Create(ctx context.Context, t entities.TimeLog) (entities.TimeLog, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.TimeLog{}, err
	}
	if err := ld.append(ctx, records.TimeLogToRow(ld.layout, t)); err != nil {
		return entities.TimeLog{}, err
	}
	return t, nil
}

func (r *TimeLogSheetRepository) GetByID(ctx context.Context, id string) (entities.TimeLog, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.TimeLog{}, err
	}
	row, pos := ld.find(records.ColTimeLogID, id)
	if pos == 0 {
		return entities.TimeLog{}, nil
	}
	return records.TimeLogFromRow(ld.layout, row), nil
}

func (r *TimeLogSheetRepository) Update(ctx context.Context, t entities.TimeLog) (entities.TimeLog, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.TimeLog{}, err
	}
	row, pos := ld.find(records.ColTimeLogID, t.TimeLogID)
	if pos == 0 {
		return entities.TimeLog{}, nil
	}
	updated, err := ld.write(ctx, pos, row,
		cell{records.ColDate, t.Date},
		cell{records.ColStartTime, t.StartTime},
		cell{records.ColEndTime, t.EndTime},
		cell{records.ColHours, records.FormatFloat(t.Hours)},
		cell{records.ColForUserEmail, t.ForUserEmail},
	)
	if err != nil {
		return entities.TimeLog{}, err
	}
	return records.TimeLogFromRow(ld.layout, updated), nil
}

type MaterialsReceiptSheetRepository struct {
	sheet
}

var _ interfaces.IMaterialsReceiptRepository = (*MaterialsReceiptSheetRepository)(nil)

func NewMaterialsReceiptSheetRepository(store tabular.Store, schema tabular.Schema) *MaterialsReceiptSheetRepository {
	return &MaterialsReceiptSheetRepository{sheet{store: store, schema: schema}}
}

func (r *MaterialsReceiptSheetRepository) Create(ctx context.Context, m entities.MaterialsReceipt) (entities.MaterialsReceipt, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.MaterialsReceipt{}, err
	}
	if err := ld.append(ctx, records.MaterialsReceiptToRow(ld.layout, m)); err != nil {
		return entities.MaterialsReceipt{}, err
	}
	return m, nil
}

func (r *MaterialsReceiptSheetRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.MaterialsReceipt, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.MaterialsReceipt
	for _, row := range ld.filter(records.ColProjectID, projectID) {
		out = append(out, records.MaterialsReceiptFromRow(ld.layout, row))
	}
	return out, nil
}

type SubInvoiceSheetRepository struct {
	sheet
}

var _ interfaces.ISubInvoiceRepository = (*SubInvoiceSheetRepository)(nil)

func NewSubInvoiceSheetRepository(store tabular.Store, schema tabular.Schema) *SubInvoiceSheetRepository {
	return &SubInvoiceSheetRepository{sheet{store: store, schema: schema}}
}

func (r *SubInvoiceSheetRepository) Create(ctx context.Context, s entities.SubInvoice) (entities.SubInvoice, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.SubInvoice{}, err
	}
	if err := ld.append(ctx, records.SubInvoiceToRow(ld.layout, s)); err != nil {
		return entities.SubInvoice{}, err
	}
	return s, nil
}

func (r *SubInvoiceSheetRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.SubInvoice, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.SubInvoice
	for _, row := range ld.filter(records.ColProjectID, projectID) {
		out = append(out, records.SubInvoiceFromRow(ld.layout, row))
	}
	return out, nil
}
