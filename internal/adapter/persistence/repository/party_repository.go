package repository

import (
	"context"
	"strings"

	"akc_operations/internal/adapter/persistence/records"
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"
)

// CustomerSheetRepository persists customers in the Customers sheet.
type CustomerSheetRepository struct {
	sheet
}

var _ interfaces.ICustomerRepository = (*CustomerSheetRepository)(nil)

func NewCustomerSheetRepository(store tabular.Store, schema tabular.Schema) *CustomerSheetRepository {
	return &CustomerSheetRepository{sheet{store: store, schema: schema}}
}

func (r *CustomerSheetRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Customer{}, err
	}
	if err := ld.append(ctx, records.CustomerToRow(ld.layout, c)); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerSheetRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Customer{}, err
	}
	row, pos := ld.find(records.ColCustomerID, id)
	if pos == 0 {
		return entities.Customer{}, nil
	}
	return records.CustomerFromRow(ld.layout, row), nil
}

// List skips rows without a usable id or name.
func (r *CustomerSheetRepository) List(ctx context.Context) ([]entities.Customer, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(ld.rows))
	for _, row := range ld.rows {
		c := records.CustomerFromRow(ld.layout, row)
		id := strings.TrimSpace(c.CustomerID)
		if id == "" || id == "undefined" || strings.TrimSpace(c.CustomerName) == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CustomerSheetRepository) UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) (entities.Customer, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Customer{}, err
	}
	row, pos := ld.find(records.ColCustomerID, id)
	if pos == 0 {
		return entities.Customer{}, nil
	}
	updated, err := ld.write(ctx, pos, row, cell{records.ColStatus, string(status)})
	if err != nil {
		return entities.Customer{}, err
	}
	return records.CustomerFromRow(ld.layout, updated), nil
}

// VendorSheetRepository persists vendors in the Vendors sheet.
type VendorSheetRepository struct {
	sheet
}

var _ interfaces.IVendorRepository = (*VendorSheetRepository)(nil)

func NewVendorSheetRepository(store tabular.Store, schema tabular.Schema) *VendorSheetRepository {
	return &VendorSheetRepository{sheet{store: store, schema: schema}}
}

func (r *VendorSheetRepository) Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Vendor{}, err
	}
	if err := ld.append(ctx, records.VendorToRow(ld.layout, v)); err != nil {
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorSheetRepository) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Vendor{}, err
	}
	row, pos := ld.find(records.ColVendorID, id)
	if pos == 0 {
		return entities.Vendor{}, nil
	}
	return records.VendorFromRow(ld.layout, row), nil
}

func (r *VendorSheetRepository) List(ctx context.Context) ([]entities.Vendor, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Vendor, 0, len(ld.rows))
	for _, row := range ld.rows {
		if v := records.VendorFromRow(ld.layout, row); strings.TrimSpace(v.VendorID) != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// SubcontractorSheetRepository persists subcontractors in the Subcontractors sheet.
type SubcontractorSheetRepository struct {
	sheet
}

var _ interfaces.ISubcontractorRepository = (*SubcontractorSheetRepository)(nil)

func NewSubcontractorSheetRepository(store tabular.Store, schema tabular.Schema) *SubcontractorSheetRepository {
	return &SubcontractorSheetRepository{sheet{store: store, schema: schema}}
}

func (r *SubcontractorSheetRepository) Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Subcontractor{}, err
	}
	if err := ld.append(ctx, records.SubcontractorToRow(ld.layout, s)); err != nil {
		return entities.Subcontractor{}, err
	}
	return s, nil
}

func (r *SubcontractorSheetRepository) GetByID(ctx context.Context, id string) (entities.Subcontractor, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return entities.Subcontractor{}, err
	}
	row, pos := ld.find(records.ColSubID, id)
	if pos == 0 {
		return entities.Subcontractor{}, nil
	}
	return records.SubcontractorFromRow(ld.layout, row), nil
}

func (r *SubcontractorSheetRepository) List(ctx context.Context) ([]entities.Subcontractor, error) {
	ld, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Subcontractor, 0, len(ld.rows))
	for _, row := range ld.rows {
		if s := records.SubcontractorFromRow(ld.layout, row); strings.TrimSpace(s.SubID) != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
