package repository

import (
	"context"
	"time"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"
)

// EstimateSheetRepository persists estimates in the Estimates sheet.
//
// Sheets without a Status header keep the status in the last column; the
// layout resolves that transparently for reads and writes.
type EstimateSheetRepository struct {
	sheet
}

var _ interfaces.IEstimateRepository = (*EstimateSheetRepository)(nil)

func NewEstimateSheetRepository(store tabular.Store, schema tabular.Schema) *EstimateSheetRepository {
	return &EstimateSheetRepository{sheet{store: store, schema: schema}}
}

func (r *EstimateSheetRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := ld.append(ctx, records.EstimateToRow(ld.layout, e)); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateSheetRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	row, pos := ld.find(records.ColEstimateID, id)
	if pos == 0 {
		return entities.Estimate{}, nil
	}
	return records.EstimateFromRow(ld.layout, row), nil
}

func (r *EstimateSheetRepository) listBy(ctx context.Context, col, value string) ([]entities.Estimate, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.Estimate
	for _, row := range ld.filter(col, value) {
		out = append(out, records.EstimateFromRow(ld.layout, row))
	}
	return out, nil
}

func (r *EstimateSheetRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	return r.listBy(ctx, records.ColProjectID, projectID)
}

func (r *EstimateSheetRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error) {
	return r.listBy(ctx, records.ColCustomerID, customerID)
}

// UpdateStatus also stamps ApprovedDate when the estimate becomes APPROVED.
func (r *EstimateSheetRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus, at time.Time) (entities.Estimate, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	row, pos := ld.find(records.ColEstimateID, id)
	if pos == 0 {
		return entities.Estimate{}, nil
	}
	cells := []cell{{records.ColStatus, string(status)}}
	if status == entities.EstimateStatusApproved {
		cells = append(cells, cell{records.ColApprovedDate, records.FormatTime(at)})
	}
	updated, err := ld.write(ctx, pos, row, cells...)
	if err != nil {
		return entities.Estimate{}, err
	}
	return records.EstimateFromRow(ld.layout, updated), nil
}

func (r *EstimateSheetRepository) UpdateDocument(ctx context.Context, id, docURL, docID string) (entities.Estimate, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	row, pos := ld.find(records.ColEstimateID, id)
	if pos == 0 {
		return entities.Estimate{}, nil
	}
	updated, err := ld.write(ctx, pos, row,
		cell{records.ColDocURL, docURL},
		cell{records.ColDocID, docID},
	)
	if err != nil {
		return entities.Estimate{}, err
	}
	return records.EstimateFromRow(ld.layout, updated), nil
}
