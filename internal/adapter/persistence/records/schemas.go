package records

import (
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/config"
)

// Schemas binds every record schema to its configured sheet name.
type Schemas struct {
	Projects          tabular.Schema
	Estimates         tabular.Schema
	Customers         tabular.Schema
	Vendors           tabular.Schema
	Subcontractors    tabular.Schema
	TimeLogs          tabular.Schema
	MaterialsReceipts tabular.Schema
	SubInvoices       tabular.Schema
	ActivityLog       tabular.Schema
	ProjectIntents    tabular.Schema
}

func NewSchemas(names config.SheetNames) Schemas {
	return Schemas{
		Projects:          ProjectSchema().WithTable(names.Projects),
		Estimates:         EstimateSchema().WithTable(names.Estimates),
		Customers:         CustomerSchema().WithTable(names.Customers),
		Vendors:           VendorSchema().WithTable(names.Vendors),
		Subcontractors:    SubcontractorSchema().WithTable(names.Subcontractors),
		TimeLogs:          TimeLogSchema().WithTable(names.TimeLogs),
		MaterialsReceipts: MaterialsReceiptSchema().WithTable(names.MaterialsReceipts),
		SubInvoices:       SubInvoiceSchema().WithTable(names.SubInvoices),
		ActivityLog:       ActivityLogSchema().WithTable(names.ActivityLog),
		ProjectIntents:    ProjectIntentSchema().WithTable(names.ProjectIntents),
	}
}

// DefaultSchemas uses the default sheet names.
func DefaultSchemas() Schemas {
	return NewSchemas(config.SheetNames{
		Projects:          "Projects",
		TimeLogs:          "TimeLogs",
		MaterialsReceipts: "MaterialsReceipts",
		Subcontractors:    "Subcontractors",
		SubInvoices:       "Subinvoices",
		Estimates:         "Estimates",
		Customers:         "Customers",
		ActivityLog:       "ActivityLog",
		Vendors:           "Vendors",
		ProjectIntents:    "ProjectIntents",
	})
}

func (s Schemas) All() []tabular.Schema {
	return []tabular.Schema{
		s.Projects, s.Estimates, s.Customers, s.Vendors, s.Subcontractors,
		s.TimeLogs, s.MaterialsReceipts, s.SubInvoices, s.ActivityLog, s.ProjectIntents,
	}
}
