package repository

import (
	"context"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"
)

// ProjectIntentSheetRepository journals project creations in the
// ProjectIntents sheet.
type ProjectIntentSheetRepository struct {
	sheet
}

var _ interfaces.IProjectIntentRepository = (*ProjectIntentSheetRepository)(nil)

func NewProjectIntentSheetRepository(store tabular.Store, schema tabular.Schema) *ProjectIntentSheetRepository {
	return &ProjectIntentSheetRepository{sheet{store: store, schema: schema}}
}

func (r *ProjectIntentSheetRepository) Create(ctx context.Context, in entities.ProjectIntent) (entities.ProjectIntent, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.ProjectIntent{}, err
	}
	if err := ld.append(ctx, records.ProjectIntentToRow(ld.layout, in)); err != nil {
		return entities.ProjectIntent{}, err
	}
	return in, nil
}

func (r *ProjectIntentSheetRepository) GetByID(ctx context.Context, id string) (entities.ProjectIntent, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.ProjectIntent{}, err
	}
	row, pos := ld.find(records.ColIntentID, id)
	if pos == 0 {
		return entities.ProjectIntent{}, nil
	}
	return records.ProjectIntentFromRow(ld.layout, row), nil
}

func (r *ProjectIntentSheetRepository) Update(ctx context.Context, in entities.ProjectIntent) (entities.ProjectIntent, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.ProjectIntent{}, err
	}
	row, pos := ld.find(records.ColIntentID, in.IntentID)
	if pos == 0 {
		return entities.ProjectIntent{}, nil
	}
	updated, err := ld.write(ctx, pos, row,
		cell{records.ColIntentState, string(in.State)},
		cell{records.ColFolders, records.FoldersToCell(in.Folders)},
		cell{records.ColError, in.Error},
		cell{records.ColUpdatedOn, records.FormatTime(in.UpdatedOn)},
	)
	if err != nil {
		return entities.ProjectIntent{}, err
	}
	return records.ProjectIntentFromRow(ld.layout, updated), nil
}

func (r *ProjectIntentSheetRepository) ListByState(ctx context.Context, state entities.IntentState) ([]entities.ProjectIntent, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	rows := ld.rows
	if state != "" {
		rows = ld.filter(records.ColIntentState, string(state))
	}
	out := make([]entities.ProjectIntent, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.ProjectIntentFromRow(ld.layout, row))
	}
	return out, nil
}
