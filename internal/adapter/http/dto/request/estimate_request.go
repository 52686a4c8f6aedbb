package request

import (
	"strings"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase"
)

type LineItemRequest struct {
	ItemService string `json:"itemService"`
	Description string `json:"description"`
	QtyHours    string `json:"qtyHours"`
	Rate        Amount `json:"rate"`
	Amount      Amount `json:"amount"`
}

type CreateEstimateRequest struct {
	ProjectID         string              `json:"projectId"`
	CustomerID        string              `json:"customerId"`
	EstimateAmount    Amount              `json:"estimateAmount"`
	ContingencyAmount Amount              `json:"contingencyAmount"`
	SiteLocation      SiteLocationRequest `json:"siteLocation"`
	PONumber          string              `json:"poNumber"`
	JobDescription    string              `json:"jobDescription"`
	LineItems         []LineItemRequest   `json:"lineItems"`
}

// ToInput drops line items without an item or description.
func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	items := make([]entities.EstimateLineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		if strings.TrimSpace(li.ItemService) == "" && strings.TrimSpace(li.Description) == "" {
			continue
		}
		items = append(items, entities.EstimateLineItem{
			ItemService: strings.TrimSpace(li.ItemService),
			Description: strings.TrimSpace(li.Description),
			QtyHours:    strings.TrimSpace(li.QtyHours),
			Rate:        li.Rate.Decimal,
			Amount:      li.Amount.Decimal,
		})
	}
	return usecase.CreateEstimateInput{
		ProjectID:         r.ProjectID,
		CustomerID:        r.CustomerID,
		EstimateAmount:    r.EstimateAmount.Decimal,
		ContingencyAmount: r.ContingencyAmount.Decimal,
		SiteLocation:      r.SiteLocation.ToEntity(),
		PONumber:          r.PONumber,
		JobDescription:    r.JobDescription,
		LineItems:         items,
	}
}
