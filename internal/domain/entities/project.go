package entities

import "time"

// SiteLocation is the job site address carried by projects and estimates.
type SiteLocation struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func (s SiteLocation) IsZero() bool {
	return s == SiteLocation{}
}

// ProjectFolders are the external folder ids created for a project: the root
// folder plus one subfolder per child module.
type ProjectFolders struct {
	Root        string `json:"root"`
	Estimates   string `json:"estimates"`
	Materials   string `json:"materials"`
	SubInvoices string `json:"subInvoices"`
}

// IDs lists the non-empty folder ids, subfolders first.
func (f ProjectFolders) IDs() []string {
	out := make([]string, 0, 4)
	for _, id := range []string{f.Estimates, f.Materials, f.SubInvoices, f.Root} {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Project is one row of the Projects sheet.
//
// Storage model (sheet "Projects"):
//   - key column: ProjectID (PROJ-YYMM-NNN)
//   - JobID mirrors ProjectID
//   - folder columns hold external folder ids
type Project struct {
	ProjectID      string         `json:"projectId"`
	CustomerID     string         `json:"customerId"`
	ProjectName    string         `json:"projectName"`
	Status         ProjectStatus  `json:"status"`
	Folders        ProjectFolders `json:"folders"`
	JobID          string         `json:"jobId"`
	SiteLocation   SiteLocation   `json:"siteLocation"`
	JobDescription string         `json:"jobDescription"`
	CreatedOn      time.Time      `json:"createdOn"`
	CreatedBy      string         `json:"createdBy"`
	LastModified   time.Time      `json:"lastModified"`
	LastModifiedBy string         `json:"lastModifiedBy"`
}

// ModuleVisibility tells the client which child-record forms may be used.
type ModuleVisibility struct {
	TimeLogging       bool `json:"timeLogging"`
	MaterialsReceipts bool `json:"materialsReceipts"`
	SubInvoices       bool `json:"subInvoices"`
}
