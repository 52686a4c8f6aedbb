package records

import (
	"strings"

	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
)

const (
	ColCustomerName = "CustomerName"
	ColAddress      = "Address"
	ColCity         = "City"
	ColState        = "State"
	ColZip          = "Zip"
	ColContactEmail = "ContactEmail"
	ColPhone        = "Phone"

	ColVendorID   = "VendorID"
	ColVendorName = "VendorName"

	ColSubID   = "SubID"
	ColSubName = "SubName"
)

// CustomerSchema resolves Status to the last column on sheets without a
// Status header.
func CustomerSchema() tabular.Schema {
	return tabular.Schema{
		Table: "Customers",
		Columns: []tabular.Column{
			{Name: ColCustomerID, Required: true},
			{Name: ColCustomerName, Required: true},
			{Name: ColAddress},
			{Name: ColCity},
			{Name: ColState},
			{Name: ColZip},
			{Name: ColContactEmail},
			{Name: ColPhone},
			{Name: ColCreatedOn, Type: tabular.Time},
			{Name: ColCreatedBy},
			{Name: ColStatus, FallbackLastColumn: true},
		},
	}
}

func CustomerFromRow(l tabular.Layout, row []string) entities.Customer {
	return entities.Customer{
		CustomerID:   l.Get(row, ColCustomerID),
		CustomerName: l.Get(row, ColCustomerName),
		Address:      l.Get(row, ColAddress),
		City:         l.Get(row, ColCity),
		State:        l.Get(row, ColState),
		Zip:          l.Get(row, ColZip),
		ContactEmail: l.Get(row, ColContactEmail),
		Phone:        l.Get(row, ColPhone),
		CreatedOn:    ParseTime(l.Get(row, ColCreatedOn)),
		CreatedBy:    l.Get(row, ColCreatedBy),
		Status:       customerStatus(l.Get(row, ColStatus)),
	}
}

// customerStatus reads a blank status as ACTIVE.
func customerStatus(s string) entities.CustomerStatus {
	if strings.TrimSpace(s) == "" {
		return entities.CustomerStatusActive
	}
	return entities.CustomerStatus(s)
}

func CustomerToRow(l tabular.Layout, c entities.Customer) []string {
	row := l.NewRow()
	l.Set(row, ColCustomerID, c.CustomerID)
	l.Set(row, ColCustomerName, c.CustomerName)
	l.Set(row, ColAddress, c.Address)
	l.Set(row, ColCity, c.City)
	l.Set(row, ColState, c.State)
	l.Set(row, ColZip, c.Zip)
	l.Set(row, ColContactEmail, c.ContactEmail)
	l.Set(row, ColPhone, c.Phone)
	l.Set(row, ColCreatedOn, FormatTime(c.CreatedOn))
	l.Set(row, ColCreatedBy, c.CreatedBy)
	l.Set(row, ColStatus, string(c.Status))
	return row
}

func VendorSchema() tabular.Schema {
	return tabular.Schema{
		Table: "Vendors",
		Columns: []tabular.Column{
			{Name: ColVendorID, Required: true},
			{Name: ColVendorName, Required: true},
			{Name: ColCreatedOn, Type: tabular.Time},
			{Name: ColCreatedBy},
			{Name: ColStatus},
		},
	}
}

func VendorFromRow(l tabular.Layout, row []string) entities.Vendor {
	return entities.Vendor{
		VendorID:   l.Get(row, ColVendorID),
		VendorName: l.Get(row, ColVendorName),
		CreatedOn:  ParseTime(l.Get(row, ColCreatedOn)),
		CreatedBy:  l.Get(row, ColCreatedBy),
		Status:     entities.VendorStatus(l.Get(row, ColStatus)),
	}
}

func VendorToRow(l tabular.Layout, v entities.Vendor) []string {
	row := l.NewRow()
	l.Set(row, ColVendorID, v.VendorID)
	l.Set(row, ColVendorName, v.VendorName)
	l.Set(row, ColCreatedOn, FormatTime(v.CreatedOn))
	l.Set(row, ColCreatedBy, v.CreatedBy)
	l.Set(row, ColStatus, string(v.Status))
	return row
}

func SubcontractorSchema() tabular.Schema {
	return tabular.Schema{
		Table: "Subcontractors",
		Columns: []tabular.Column{
			{Name: ColSubID, Required: true},
			{Name: ColSubName, Required: true},
			{Name: ColAddress},
			{Name: ColCity},
			{Name: ColState},
			{Name: ColZip},
			{Name: ColContactEmail},
			{Name: ColPhone},
		},
	}
}

func SubcontractorFromRow(l tabular.Layout, row []string) entities.Subcontractor {
	return entities.Subcontractor{
		SubID:        l.Get(row, ColSubID),
		SubName:      l.Get(row, ColSubName),
		Address:      l.Get(row, ColAddress),
		City:         l.Get(row, ColCity),
		State:        l.Get(row, ColState),
		Zip:          l.Get(row, ColZip),
		ContactEmail: l.Get(row, ColContactEmail),
		Phone:        l.Get(row, ColPhone),
	}
}

func SubcontractorToRow(l tabular.Layout, s entities.Subcontractor) []string {
	row := l.NewRow()
	l.Set(row, ColSubID, s.SubID)
	l.Set(row, ColSubName, s.SubName)
	l.Set(row, ColAddress, s.Address)
	l.Set(row, ColCity, s.City)
	l.Set(row, ColState, s.State)
	l.Set(row, ColZip, s.Zip)
	l.Set(row, ColContactEmail, s.ContactEmail)
	l.Set(row, ColPhone, s.Phone)
	return row
}
