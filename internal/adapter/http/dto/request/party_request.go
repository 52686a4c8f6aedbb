package request

import "akc_operations/internal/usecase"

type CreateCustomerRequest struct {
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
}

func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput(r)
}

type CreateVendorRequest struct {
	VendorName string `json:"vendorName"`
}

type CreateSubcontractorRequest struct {
	SubName      string `json:"subName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
}

func (r CreateSubcontractorRequest) ToInput() usecase.CreateSubcontractorInput {
	return usecase.CreateSubcontractorInput(r)
}
