package repository

import (
	"context"
	"strings"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"
)

// ActivityLogSheetRepository appends audit entries to the ActivityLog sheet.
// It exposes no update or delete.
type ActivityLogSheetRepository struct {
	sheet
}

var _ interfaces.IActivityLogRepository = (*ActivityLogSheetRepository)(nil)

func NewActivityLogSheetRepository(store tabular.Store, schema tabular.Schema) *ActivityLogSheetRepository {
	return &ActivityLogSheetRepository{sheet{store: store, schema: schema}}
}

func (r *ActivityLogSheetRepository) Append(ctx context.Context, e entities.ActivityLogEntry) error {
	ld, err := r.load(ctx)
	if err != nil {
		return err
	}
	return ld.append(ctx, records.ActivityToRow(ld.layout, e))
}

func (r *ActivityLogSheetRepository) List(ctx context.Context, filter interfaces.ActivityFilter) ([]entities.ActivityLogEntry, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.ActivityLogEntry
	for _, row := range ld.rows {
		e := records.ActivityFromRow(ld.layout, row)
		if filter.ModuleType != "" && !strings.EqualFold(strings.TrimSpace(string(e.ModuleType)), string(filter.ModuleType)) {
			continue
		}
		if filter.ReferenceID != "" && strings.TrimSpace(e.ReferenceID) != strings.TrimSpace(filter.ReferenceID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
