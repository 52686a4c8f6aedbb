package entities

import "time"

// Customer is one row of the Customers sheet (id YY-NNN).
type Customer struct {
	CustomerID   string         `json:"customerId"`
	CustomerName string         `json:"customerName"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	Zip          string         `json:"zip"`
	ContactEmail string         `json:"contactEmail"`
	Phone        string         `json:"phone"`
	CreatedOn    time.Time      `json:"createdOn"`
	CreatedBy    string         `json:"createdBy"`
	Status       CustomerStatus `json:"status"`
}

func (c Customer) Location() SiteLocation {
	return SiteLocation{Address: c.Address, City: c.City, State: c.State, Zip: c.Zip}
}

// Vendor is one row of the Vendors sheet (id VEND-NNN).
type Vendor struct {
	VendorID   string       `json:"vendorId"`
	VendorName string       `json:"vendorName"`
	CreatedOn  time.Time    `json:"createdOn"`
	CreatedBy  string       `json:"createdBy"`
	Status     VendorStatus `json:"status"`
}

// Subcontractor is one row of the Subcontractors sheet (id Sub-NNN).
type Subcontractor struct {
	SubID        string `json:"subId"`
	SubName      string `json:"subName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
}
