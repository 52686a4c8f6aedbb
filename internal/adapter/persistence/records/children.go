package records

import (
	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/entities"
)

const (
	ColTimeLogID      = "TimeLogID"
	ColDate           = "Date"
	ColStartTime      = "StartTime"
	ColEndTime        = "EndTime"
	ColHours          = "Hours"
	ColSubmittingUser = "SubmittingUser"
	ColForUserEmail   = "ForUserEmail"
	ColSubmittedOn    = "SubmittedOn"

	ColReceiptID     = "ReceiptID"
	ColAmount        = "Amount"
	ColReceiptDocURL = "ReceiptDocURL"
	ColFileDocID     = "DocID"

	ColInvoiceID     = "InvoiceID"
	ColInvoiceAmount = "InvoiceAmount"
	ColInvoiceDocURL = "InvoiceDocURL"
)

func TimeLogSchema() tabular.Schema {
	return tabular.Schema{
		Table: "TimeLogs",
		Columns: []tabular.Column{
			{Name: ColTimeLogID, Required: true},
			{Name: ColProjectID, Required: true},
			{Name: ColDate},
			{Name: ColStartTime},
			{Name: ColEndTime},
			{Name: ColHours, Type: tabular.Number},
			{Name: ColSubmittingUser},
			{Name: ColForUserEmail},
			{Name: ColSubmittedOn, Type: tabular.Time},
		},
	}
}

func TimeLogFromRow(l tabular.Layout, row []string) entities.TimeLog {
	return entities.TimeLog{
		TimeLogID:      l.Get(row, ColTimeLogID),
		ProjectID:      l.Get(row, ColProjectID),
		Date:           l.Get(row, ColDate),
		StartTime:      l.Get(row, ColStartTime),
		EndTime:        l.Get(row, ColEndTime),
		Hours:          ParseFloat(l.Get(row, ColHours)),
		SubmittingUser: l.Get(row, ColSubmittingUser),
		ForUserEmail:   l.Get(row, ColForUserEmail),
		SubmittedOn:    ParseTime(l.Get(row, ColSubmittedOn)),
	}
}

func TimeLogToRow(l tabular.Layout, t entities.TimeLog) []string {
	row := l.NewRow()
	l.Set(row, ColTimeLogID, t.TimeLogID)
	l.Set(row, ColProjectID, t.ProjectID)
	l.Set(row, ColDate, t.Date)
	l.Set(row, ColStartTime, t.StartTime)
	l.Set(row, ColEndTime, t.EndTime)
	l.Set(row, ColHours, FormatFloat(t.Hours))
	l.Set(row, ColSubmittingUser, t.SubmittingUser)
	l.Set(row, ColForUserEmail, t.ForUserEmail)
	l.Set(row, ColSubmittedOn, FormatTime(t.SubmittedOn))
	return row
}

func MaterialsReceiptSchema() tabular.Schema {
	return tabular.Schema{
		Table: "MaterialsReceipts",
		Columns: []tabular.Column{
			{Name: ColReceiptID, Required: true},
			{Name: ColProjectID, Required: true},
			{Name: ColVendorID},
			{Name: ColVendorName},
			{Name: ColAmount, Type: tabular.Number},
			{Name: ColReceiptDocURL},
			{Name: ColSubmittingUser},
			{Name: ColForUserEmail},
			{Name: ColSubmittedOn, Type: tabular.Time},
			{Name: ColFileDocID},
		},
	}
}

func MaterialsReceiptFromRow(l tabular.Layout, row []string) entities.MaterialsReceipt {
	return entities.MaterialsReceipt{
		ReceiptID:      l.Get(row, ColReceiptID),
		ProjectID:      l.Get(row, ColProjectID),
		VendorID:       l.Get(row, ColVendorID),
		VendorName:     l.Get(row, ColVendorName),
		Amount:         ParseAmount(l.Get(row, ColAmount)),
		ReceiptDocURL:  l.Get(row, ColReceiptDocURL),
		DocID:          l.Get(row, ColFileDocID),
		SubmittingUser: l.Get(row, ColSubmittingUser),
		ForUserEmail:   l.Get(row, ColForUserEmail),
		SubmittedOn:    ParseTime(l.Get(row, ColSubmittedOn)),
	}
}

func MaterialsReceiptToRow(l tabular.Layout, m entities.MaterialsReceipt) []string {
	row := l.NewRow()
	l.Set(row, ColReceiptID, m.ReceiptID)
	l.Set(row, ColProjectID, m.ProjectID)
	l.Set(row, ColVendorID, m.VendorID)
	l.Set(row, ColVendorName, m.VendorName)
	l.Set(row, ColAmount, FormatAmount(m.Amount))
	l.Set(row, ColReceiptDocURL, m.ReceiptDocURL)
	l.Set(row, ColFileDocID, m.DocID)
	l.Set(row, ColSubmittingUser, m.SubmittingUser)
	l.Set(row, ColForUserEmail, m.ForUserEmail)
	l.Set(row, ColSubmittedOn, FormatTime(m.SubmittedOn))
	return row
}

func SubInvoiceSchema() tabular.Schema {
	return tabular.Schema{
		Table: "Subinvoices",
		Columns: []tabular.Column{
			{Name: ColInvoiceID, Required: true},
			{Name: ColProjectID, Required: true},
			{Name: ColProjectName},
			{Name: ColSubID},
			{Name: ColSubName},
			{Name: ColInvoiceAmount, Type: tabular.Number},
			{Name: ColInvoiceDocURL},
			{Name: ColSubmittingUser},
			{Name: ColSubmittedOn, Type: tabular.Time},
			{Name: ColFileDocID},
		},
	}
}

func SubInvoiceFromRow(l tabular.Layout, row []string) entities.SubInvoice {
	return entities.SubInvoice{
		InvoiceID:      l.Get(row, ColInvoiceID),
		ProjectID:      l.Get(row, ColProjectID),
		ProjectName:    l.Get(row, ColProjectName),
		SubID:          l.Get(row, ColSubID),
		SubName:        l.Get(row, ColSubName),
		InvoiceAmount:  ParseAmount(l.Get(row, ColInvoiceAmount)),
		InvoiceDocURL:  l.Get(row, ColInvoiceDocURL),
		DocID:          l.Get(row, ColFileDocID),
		SubmittingUser: l.Get(row, ColSubmittingUser),
		SubmittedOn:    ParseTime(l.Get(row, ColSubmittedOn)),
	}
}

func SubInvoiceToRow(l tabular.Layout, s entities.SubInvoice) []string {
	row := l.NewRow()
	l.Set(row, ColInvoiceID, s.InvoiceID)
	l.Set(row, ColProjectID, s.ProjectID)
	l.Set(row, ColProjectName, s.ProjectName)
	l.Set(row, ColSubID, s.SubID)
	l.Set(row, ColSubName, s.SubName)
	l.Set(row, ColInvoiceAmount, FormatAmount(s.InvoiceAmount))
	l.Set(row, ColInvoiceDocURL, s.InvoiceDocURL)
	l.Set(row, ColFileDocID, s.DocID)
	l.Set(row, ColSubmittingUser, s.SubmittingUser)
	l.Set(row, ColSubmittedOn, FormatTime(s.SubmittedOn))
	return row
}
