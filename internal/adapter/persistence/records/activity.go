package records

import (
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
)

const (
	ColLogID          = "LogID"
	ColTimestamp      = "Timestamp"
	ColAction         = "Action"
	ColUserEmail      = "UserEmail"
	ColModuleType     = "ModuleType"
	ColReferenceID    = "ReferenceID"
	ColDetails        = "Details"
	ColPreviousStatus = "PreviousStatus"
)

func ActivityLogSchema() tabular.Schema {
	return tabular.Schema{
		Table: "ActivityLog",
		Columns: []tabular.Column{
			{Name: ColLogID, Required: true},
			{Name: ColTimestamp, Type: tabular.Time},
			{Name: ColAction, Required: true},
			{Name: ColUserEmail},
			{Name: ColModuleType},
			{Name: ColReferenceID},
			{Name: ColDetails, Type: tabular.JSON},
			{Name: ColStatus},
			{Name: ColPreviousStatus},
		},
	}
}

func ActivityFromRow(l tabular.Layout, row []string) entities.ActivityLogEntry {
	return entities.ActivityLogEntry{
		LogID:          l.Get(row, ColLogID),
		Timestamp:      ParseTime(l.Get(row, ColTimestamp)),
		Action:         entities.ActivityAction(l.Get(row, ColAction)),
		UserEmail:      l.Get(row, ColUserEmail),
		ModuleType:     entities.EntityType(l.Get(row, ColModuleType)),
		ReferenceID:    l.Get(row, ColReferenceID),
		Details:        ParseJSON(l.Get(row, ColDetails)),
		Status:         l.Get(row, ColStatus),
		PreviousStatus: l.Get(row, ColPreviousStatus),
	}
}

func ActivityToRow(l tabular.Layout, e entities.ActivityLogEntry) []string {
	row := l.NewRow()
	l.Set(row, ColLogID, e.LogID)
	l.Set(row, ColTimestamp, FormatTime(e.Timestamp))
	l.Set(row, ColAction, string(e.Action))
	l.Set(row, ColUserEmail, e.UserEmail)
	l.Set(row, ColModuleType, string(e.ModuleType))
	l.Set(row, ColReferenceID, e.ReferenceID)
	l.Set(row, ColDetails, string(e.Details))
	l.Set(row, ColStatus, e.Status)
	l.Set(row, ColPreviousStatus, e.PreviousStatus)
	return row
}
