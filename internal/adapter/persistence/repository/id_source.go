package repository

import (
	"context"
	"fmt"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/idgen"
)

type idColumns struct {
	schema tabular.Schema
	id     string
	scope  string
}

// IDSource reads stored ids for the id generator.
type IDSource struct {
	store   tabular.Store
	columns map[entities.EntityType]idColumns
}

var _ idgen.Source = (*IDSource)(nil)

func NewIDSource(store tabular.Store, schemas records.Schemas) *IDSource {
	return &IDSource{
		store: store,
		columns: map[entities.EntityType]idColumns{
			entities.EntityProject:       {schema: schemas.Projects, id: records.ColProjectID},
			entities.EntityEstimate:      {schema: schemas.Estimates, id: records.ColEstimateID, scope: records.ColProjectID},
			entities.EntityCustomer:      {schema: schemas.Customers, id: records.ColCustomerID},
			entities.EntityVendor:        {schema: schemas.Vendors, id: records.ColVendorID},
			entities.EntitySubcontractor: {schema: schemas.Subcontractors, id: records.ColSubID},
		},
	}
}

func (s *IDSource) ExistingIDs(ctx context.Context, et entities.EntityType) ([]idgen.Existing, error) {
	cols, ok := s.columns[et]
	if !ok {
		return nil, fmt.Errorf("%w: %s", idgen.ErrNoStrategy, et)
	}
	ld, err := sheet{store: s.store, schema: cols.schema}.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]idgen.Existing, 0, len(ld.rows))
	for _, row := range ld.rows {
		e := idgen.Existing{ID: ld.layout.Get(row, cols.id)}
		if cols.scope != "" {
			e.Scope = ld.layout.Get(row, cols.scope)
		}
		out = append(out, e)
	}
	return out, nil
}
