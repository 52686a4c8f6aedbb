package request

import (
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase"
)

type SiteLocationRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func (r SiteLocationRequest) ToEntity() entities.SiteLocation {
	return entities.SiteLocation{Address: r.Address, City: r.City, State: r.State, Zip: r.Zip}
}

type CreateProjectRequest struct {
	CustomerID     string              `json:"customerId"`
	ProjectName    string              `json:"projectName"`
	SiteLocation   SiteLocationRequest `json:"siteLocation"`
	JobDescription string              `json:"jobDescription"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		CustomerID:     r.CustomerID,
		ProjectName:    r.ProjectName,
		SiteLocation:   r.SiteLocation.ToEntity(),
		JobDescription: r.JobDescription,
	}
}

// StatusRequest is the body of every status update endpoint.
type StatusRequest struct {
	Status string `json:"status"`
}
