package records

import (
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
)

const (
	ColProjectID           = "ProjectID"
	ColCustomerID          = "CustomerID"
	ColProjectName         = "ProjectName"
	ColStatus              = "Status"
	ColFolderID            = "FolderID"
	ColCreatedOn           = "CreatedOn"
	ColCreatedBy           = "CreatedBy"
	ColJobID               = "JobID"
	ColLastModified        = "LastModified"
	ColLastModifiedBy      = "LastModifiedBy"
	ColEstimatesFolderID   = "EstimatesFolderID"
	ColMaterialsFolderID   = "MaterialsFolderID"
	ColSubInvoicesFolderID = "SubInvoicesFolderID"
	ColSiteAddress         = "SiteLocationAddress"
	ColSiteCity            = "SiteLocationCity"
	ColSiteState           = "SiteLocationState"
	ColSiteZip             = "SiteLocationZip"
	ColJobDescription      = "JobDescription"
)

func ProjectSchema() tabular.Schema {
	return tabular.Schema{
		Table: "Projects",
		Columns: []tabular.Column{
			{Name: ColProjectID, Required: true},
			{Name: ColCustomerID},
			{Name: ColProjectName, Required: true},
			{Name: ColStatus, Required: true},
			{Name: ColFolderID, Required: true},
			{Name: ColCreatedOn, Type: tabular.Time},
			{Name: ColCreatedBy},
			{Name: ColJobID, Required: true},
			{Name: ColLastModified, Type: tabular.Time},
			{Name: ColLastModifiedBy},
			{Name: ColEstimatesFolderID, Required: true},
			{Name: ColMaterialsFolderID, Required: true},
			{Name: ColSubInvoicesFolderID, Required: true},
			{Name: ColSiteAddress},
			{Name: ColSiteCity},
			{Name: ColSiteState},
			{Name: ColSiteZip},
			{Name: ColJobDescription},
		},
	}
}

func siteFromRow(l tabular.Layout, row []string) entities.SiteLocation {
	return entities.SiteLocation{
		Address: l.Get(row, ColSiteAddress),
		City:    l.Get(row, ColSiteCity),
		State:   l.Get(row, ColSiteState),
		Zip:     l.Get(row, ColSiteZip),
	}
}

func siteToRow(l tabular.Layout, row []string, s entities.SiteLocation) {
	l.Set(row, ColSiteAddress, s.Address)
	l.Set(row, ColSiteCity, s.City)
	l.Set(row, ColSiteState, s.State)
	l.Set(row, ColSiteZip, s.Zip)
}

func ProjectFromRow(l tabular.Layout, row []string) entities.Project {
	return entities.Project{
		ProjectID:   l.Get(row, ColProjectID),
		CustomerID:  l.Get(row, ColCustomerID),
		ProjectName: l.Get(row, ColProjectName),
		Status:      entities.ProjectStatus(l.Get(row, ColStatus)),
		Folders: entities.ProjectFolders{
			Root:        l.Get(row, ColFolderID),
			Estimates:   l.Get(row, ColEstimatesFolderID),
			Materials:   l.Get(row, ColMaterialsFolderID),
			SubInvoices: l.Get(row, ColSubInvoicesFolderID),
		},
		JobID:          l.Get(row, ColJobID),
		SiteLocation:   siteFromRow(l, row),
		JobDescription: l.Get(row, ColJobDescription),
		CreatedOn:      ParseTime(l.Get(row, ColCreatedOn)),
		CreatedBy:      l.Get(row, ColCreatedBy),
		LastModified:   ParseTime(l.Get(row, ColLastModified)),
		LastModifiedBy: l.Get(row, ColLastModifiedBy),
	}
}

func ProjectToRow(l tabular.Layout, p entities.Project) []string {
	row := l.NewRow()
	l.Set(row, ColProjectID, p.ProjectID)
	l.Set(row, ColCustomerID, p.CustomerID)
	l.Set(row, ColProjectName, p.ProjectName)
	l.Set(row, ColStatus, string(p.Status))
	l.Set(row, ColFolderID, p.Folders.Root)
	l.Set(row, ColEstimatesFolderID, p.Folders.Estimates)
	l.Set(row, ColMaterialsFolderID, p.Folders.Materials)
	l.Set(row, ColSubInvoicesFolderID, p.Folders.SubInvoices)
	l.Set(row, ColJobID, p.JobID)
	siteToRow(l, row, p.SiteLocation)
	l.Set(row, ColJobDescription, p.JobDescription)
	l.Set(row, ColCreatedOn, FormatTime(p.CreatedOn))
	l.Set(row, ColCreatedBy, p.CreatedBy)
	l.Set(row, ColLastModified, FormatTime(p.LastModified))
	l.Set(row, ColLastModifiedBy, p.LastModifiedBy)
	return row
}
