package response

import (
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase"

	"github.com/shopspring/decimal"
)

type CustomerMetricsResponse struct {
	TotalProjects          int             `json:"totalProjects"`
	ActiveProjects         int             `json:"activeProjects"`
	CompletedProjects      int             `json:"completedProjects"`
	TotalEstimates         int             `json:"totalEstimates"`
	ApprovedEstimates      int             `json:"approvedEstimates"`
	TotalApprovedAmount    decimal.Decimal `json:"totalApprovedAmount"`
	EstimateConversionRate decimal.Decimal `json:"estimateConversionRate"`
	AverageProjectValue    decimal.Decimal `json:"averageProjectValue"`
	LastActivity           string          `json:"lastActivity,omitempty"`
}

type CustomerDetailsResponse struct {
	entities.Customer
	Projects  []entities.Project      `json:"projects"`
	Estimates []entities.Estimate     `json:"estimates"`
	Metrics   CustomerMetricsResponse `json:"metrics"`
}

func FromCustomerDetails(d usecase.CustomerDetails) CustomerDetailsResponse {
	m := d.Metrics
	return CustomerDetailsResponse{
		Customer:  d.Customer,
		Projects:  nonNil(d.Projects),
		Estimates: nonNil(d.Estimates),
		Metrics: CustomerMetricsResponse{
			TotalProjects:          m.TotalProjects,
			ActiveProjects:         m.ActiveProjects,
			CompletedProjects:      m.CompletedProjects,
			TotalEstimates:         m.TotalEstimates,
			ApprovedEstimates:      m.ApprovedEstimates,
			TotalApprovedAmount:    m.TotalApprovedAmount,
			EstimateConversionRate: m.ConversionRate,
			AverageProjectValue:    m.AverageProjectValue,
			LastActivity:           formatTime(m.LastActivity),
		},
	}
}

// CustomerStatusResponse keeps the {customerId, status} shape clients expect.
type CustomerStatusResponse struct {
	CustomerID     string `json:"customerId"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus"`
}

func FromCustomerStatusChange(c usecase.StatusChange) CustomerStatusResponse {
	return CustomerStatusResponse{CustomerID: c.ID, Status: c.NewStatus, PreviousStatus: c.OldStatus}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
