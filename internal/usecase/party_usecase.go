package usecase

//go:generate mockgen -source=party_usecase.go -destination=../adapter/http/handlers/mocks/party_usecase_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/identity"
	"akc_operations/internal/logging"
	"akc_operations/internal/usecase/interfaces"
)

type CreateSubcontractorInput struct {
	SubName      string
	Address      string
	City         string
	State        string
	Zip          string
	ContactEmail string
	Phone        string
}

// IPartyUseCase manages vendors and subcontractors.
type IPartyUseCase interface {
	CreateVendor(ctx context.Context, name string) (entities.Vendor, error)
	ListVendors(ctx context.Context) ([]entities.Vendor, error)
	CreateSubcontractor(ctx context.Context, in CreateSubcontractorInput) (entities.Subcontractor, error)
	ListSubcontractors(ctx context.Context) ([]entities.Subcontractor, error)
}

type PartyUseCase struct {
	vendors        interfaces.IVendorRepository
	subcontractors interfaces.ISubcontractorRepository
	ids            interfaces.IIDGenerator
	activity       IActivityLogger
	now            func() time.Time
}

var _ IPartyUseCase = (*PartyUseCase)(nil)

func NewPartyUseCase(
	vendors interfaces.IVendorRepository,
	subcontractors interfaces.ISubcontractorRepository,
	ids interfaces.IIDGenerator,
	activity IActivityLogger,
) *PartyUseCase {
	return &PartyUseCase{
		vendors:        vendors,
		subcontractors: subcontractors,
		ids:            ids,
		activity:       activity,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (u *PartyUseCase) CreateVendor(ctx context.Context, name string) (entities.Vendor, error) {
	name = strings.TrimSpace(name)
	if err := requireFields(field{"vendorName", name}); err != nil {
		return entities.Vendor{}, err
	}

	id, err := u.ids.NextID(ctx, entities.EntityVendor, "")
	if err != nil {
		return entities.Vendor{}, external(serviceStorage, err)
	}
	v, err := u.vendors.Create(ctx, entities.Vendor{
		VendorID:   id,
		VendorName: name,
		CreatedOn:  u.now(),
		CreatedBy:  identity.Actor(ctx),
		Status:     entities.VendorStatusActive,
	})
	if err != nil {
		return entities.Vendor{}, external(serviceStorage, err)
	}

	u.activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionVendorCreated,
		ModuleType:  entities.EntityVendor,
		ReferenceID: id,
		Status:      string(entities.VendorStatusActive),
		Details:     map[string]any{"vendorName": name},
	})
	logging.Component(ctx, "vendor", "usecase").Info().Str("vendor_id", id).Msg("vendor created")
	return v, nil
}

func (u *PartyUseCase) ListVendors(ctx context.Context) ([]entities.Vendor, error) {
	vendors, err := u.vendors.List(ctx)
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	return vendors, nil
}

func (u *PartyUseCase) CreateSubcontractor(ctx context.Context, in CreateSubcontractorInput) (entities.Subcontractor, error) {
	name := strings.TrimSpace(in.SubName)
	if err := requireFields(field{"subName", name}); err != nil {
		return entities.Subcontractor{}, err
	}

	id, err := u.ids.NextID(ctx, entities.EntitySubcontractor, "")
	if err != nil {
		return entities.Subcontractor{}, external(serviceStorage, err)
	}
	s, err := u.subcontractors.Create(ctx, entities.Subcontractor{
		SubID:        id,
		SubName:      name,
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		Zip:          strings.TrimSpace(in.Zip),
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		Phone:        strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return entities.Subcontractor{}, external(serviceStorage, err)
	}

	u.activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionSubcontractorCreated,
		ModuleType:  entities.EntitySubcontractor,
		ReferenceID: id,
		Details:     map[string]any{"subName": name},
	})
	logging.Component(ctx, "subcontractor", "usecase").Info().Str("sub_id", id).Msg("subcontractor created")
	return s, nil
}

func (u *PartyUseCase) ListSubcontractors(ctx context.Context) ([]entities.Subcontractor, error) {
	subs, err := u.subcontractors.List(ctx)
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	return subs, nil
}
