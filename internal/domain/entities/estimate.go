package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estimate is one row of the Estimates sheet.
//
// Storage model (sheet "Estimates"):
//   - key column: EstimateID (EST-{projectId}-{n})
//   - DocUrl / DocId point at the rendered estimate document
//   - legacy sheets without a Status header keep the status in the last column
//
// Monetary representation:
//   - EstimateAmount and ContingencyAmount are decimals, written as plain
//     numeric strings.
type Estimate struct {
	EstimateID        string          `json:"estimateId"`
	ProjectID         string          `json:"projectId"`
	CustomerID        string          `json:"customerId"`
	DateCreated       time.Time       `json:"dateCreated"`
	EstimateAmount    decimal.Decimal `json:"estimateAmount"`
	ContingencyAmount decimal.Decimal `json:"contingencyAmount"`
	CreatedBy         string          `json:"createdBy"`
	DocURL            string          `json:"docUrl"`
	DocID             string          `json:"docId"`
	Status            EstimateStatus  `json:"status"`
	SentDate          time.Time       `json:"sentDate"`
	IsActive          bool            `json:"isActive"`
	ApprovedDate      time.Time       `json:"approvedDate"`
	SiteLocation      SiteLocation    `json:"siteLocation"`
}

// EstimateLineItem is one row of the ITEM/SERVICE table of an estimate document.
type EstimateLineItem struct {
	ItemService string          `json:"itemService"`
	Description string          `json:"description"`
	QtyHours    string          `json:"qtyHours"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}
