package records

import (
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
)

const (
	ColEstimateID        = "EstimateID"
	ColDateCreated       = "DateCreated"
	ColEstimateAmount    = "EstimateAmount"
	ColContingencyAmount = "ContingencyAmount"
	ColDocURL            = "DocUrl"
	ColDocID             = "DocId"
	ColSentDate          = "SentDate"
	ColIsActive          = "IsActive"
	ColApprovedDate      = "ApprovedDate"
)

// EstimateSchema resolves Status to the last column on sheets without a
// Status header and adds ContingencyAmount to sheets created before it existed.
func EstimateSchema() tabular.Schema {
	return tabular.Schema{
		Table: "Estimates",
		Columns: []tabular.Column{
			{Name: ColEstimateID, Required: true},
			{Name: ColProjectID, Required: true},
			{Name: ColDateCreated, Type: tabular.Time},
			{Name: ColCustomerID},
			{Name: ColEstimateAmount, Type: tabular.Number},
			{Name: ColContingencyAmount, Type: tabular.Number, AddIfMissing: true},
			{Name: ColCreatedBy},
			{Name: ColDocURL},
			{Name: ColDocID},
			{Name: ColStatus, FallbackLastColumn: true},
			{Name: ColSentDate, Type: tabular.Time},
			{Name: ColIsActive, Type: tabular.Bool},
			{Name: ColApprovedDate, Type: tabular.Time},
			{Name: ColSiteAddress},
			{Name: ColSiteCity},
			{Name: ColSiteState},
			{Name: ColSiteZip},
		},
	}
}

func EstimateFromRow(l tabular.Layout, row []string) entities.Estimate {
	return entities.Estimate{
		EstimateID:        l.Get(row, ColEstimateID),
		ProjectID:         l.Get(row, ColProjectID),
		CustomerID:        l.Get(row, ColCustomerID),
		DateCreated:       ParseTime(l.Get(row, ColDateCreated)),
		EstimateAmount:    ParseAmount(l.Get(row, ColEstimateAmount)),
		ContingencyAmount: ParseAmount(l.Get(row, ColContingencyAmount)),
		CreatedBy:         l.Get(row, ColCreatedBy),
		DocURL:            l.Get(row, ColDocURL),
		DocID:             l.Get(row, ColDocID),
		Status:            entities.EstimateStatus(l.Get(row, ColStatus)),
		SentDate:          ParseTime(l.Get(row, ColSentDate)),
		IsActive:          ParseBool(l.Get(row, ColIsActive)),
		ApprovedDate:      ParseTime(l.Get(row, ColApprovedDate)),
		SiteLocation:      siteFromRow(l, row),
	}
}

func EstimateToRow(l tabular.Layout, e entities.Estimate) []string {
	row := l.NewRow()
	l.Set(row, ColEstimateID, e.EstimateID)
	l.Set(row, ColProjectID, e.ProjectID)
	l.Set(row, ColCustomerID, e.CustomerID)
	l.Set(row, ColDateCreated, FormatTime(e.DateCreated))
	l.Set(row, ColEstimateAmount, FormatAmount(e.EstimateAmount))
	l.Set(row, ColContingencyAmount, FormatAmount(e.ContingencyAmount))
	l.Set(row, ColCreatedBy, e.CreatedBy)
	l.Set(row, ColDocURL, e.DocURL)
	l.Set(row, ColDocID, e.DocID)
	l.Set(row, ColSentDate, FormatTime(e.SentDate))
	l.Set(row, ColIsActive, FormatBool(e.IsActive))
	l.Set(row, ColApprovedDate, FormatTime(e.ApprovedDate))
	siteToRow(l, row, e.SiteLocation)
	// Status last: under the legacy fallback it shares the final column.
	l.Set(row, ColStatus, string(e.Status))
	return row
}
