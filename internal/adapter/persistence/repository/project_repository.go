package repository

import (
	"context"
	"time"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"
)

// ProjectSheetRepository persists projects in the Projects sheet.
type ProjectSheetRepository struct {
	sheet
}

var _ interfaces.IProjectRepository = (*ProjectSheetRepository)(nil)

func NewProjectSheetRepository(store tabular.Store, schema tabular.Schema) *ProjectSheetRepository {
	return &ProjectSheetRepository{sheet{store: store, schema: schema}}
}

func (r *ProjectSheetRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	if err := ld.append(ctx, records.ProjectToRow(ld.layout, p)); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectSheetRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	row, pos := ld.find(records.ColProjectID, id)
	if pos == 0 {
		return entities.Project{}, nil
	}
	return records.ProjectFromRow(ld.layout, row), nil
}

func (r *ProjectSheetRepository) List(ctx context.Context) ([]entities.Project, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(ld.rows))
	for _, row := range ld.rows {
		out = append(out, records.ProjectFromRow(ld.layout, row))
	}
	return out, nil
}

func (r *ProjectSheetRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Project, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.Project
	for _, row := range ld.filter(records.ColCustomerID, customerID) {
		out = append(out, records.ProjectFromRow(ld.layout, row))
	}
	return out, nil
}

func (r *ProjectSheetRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus, actor string, at time.Time) (entities.Project, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	row, pos := ld.find(records.ColProjectID, id)
	if pos == 0 {
		return entities.Project{}, nil
	}
	updated, err := ld.write(ctx, pos, row,
		cell{records.ColStatus, string(status)},
		cell{records.ColLastModified, records.FormatTime(at)},
		cell{records.ColLastModifiedBy, actor},
	)
	if err != nil {
		return entities.Project{}, err
	}
	return records.ProjectFromRow(ld.layout, updated), nil
}
