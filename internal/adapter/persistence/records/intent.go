package records

import (
	"encoding/json"

	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
)

const (
	ColIntentID    = "IntentID"
	ColIntentState = "IntentState"
	ColFolders     = "Folders"
	ColError       = "Error"
	ColUpdatedOn   = "UpdatedOn"
)

func ProjectIntentSchema() tabular.Schema {
	return tabular.Schema{
		Table: "ProjectIntents",
		Columns: []tabular.Column{
			{Name: ColIntentID, Required: true},
			{Name: ColProjectID, Required: true},
			{Name: ColCustomerID},
			{Name: ColProjectName},
			{Name: ColIntentState, Required: true},
			{Name: ColFolders, Type: tabular.JSON},
			{Name: ColError},
			{Name: ColCreatedOn, Type: tabular.Time},
			{Name: ColUpdatedOn, Type: tabular.Time},
			{Name: ColCreatedBy},
		},
	}
}

func FoldersFromCell(cell string) entities.ProjectFolders {
	var f entities.ProjectFolders
	_ = json.Unmarshal([]byte(cell), &f)
	return f
}

func FoldersToCell(f entities.ProjectFolders) string {
	if f == (entities.ProjectFolders{}) {
		return ""
	}
	raw, _ := json.Marshal(f)
	return string(raw)
}

func ProjectIntentFromRow(l tabular.Layout, row []string) entities.ProjectIntent {
	return entities.ProjectIntent{
		IntentID:    l.Get(row, ColIntentID),
		ProjectID:   l.Get(row, ColProjectID),
		CustomerID:  l.Get(row, ColCustomerID),
		ProjectName: l.Get(row, ColProjectName),
		State:       entities.IntentState(l.Get(row, ColIntentState)),
		Folders:     FoldersFromCell(l.Get(row, ColFolders)),
		Error:       l.Get(row, ColError),
		CreatedOn:   ParseTime(l.Get(row, ColCreatedOn)),
		UpdatedOn:   ParseTime(l.Get(row, ColUpdatedOn)),
		CreatedBy:   l.Get(row, ColCreatedBy),
	}
}

func ProjectIntentToRow(l tabular.Layout, in entities.ProjectIntent) []string {
	row := l.NewRow()
	l.Set(row, ColIntentID, in.IntentID)
	l.Set(row, ColProjectID, in.ProjectID)
	l.Set(row, ColCustomerID, in.CustomerID)
	l.Set(row, ColProjectName, in.ProjectName)
	l.Set(row, ColIntentState, string(in.State))
	l.Set(row, ColFolders, FoldersToCell(in.Folders))
	l.Set(row, ColError, in.Error)
	l.Set(row, ColCreatedOn, FormatTime(in.CreatedOn))
	l.Set(row, ColUpdatedOn, FormatTime(in.UpdatedOn))
	l.Set(row, ColCreatedBy, in.CreatedBy)
	return row
}
