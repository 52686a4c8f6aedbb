package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLog, MaterialsReceipt and SubInvoice are child records of a project.
// They may only be created while the parent project is APPROVED or IN_PROGRESS.

type TimeLog struct {
	TimeLogID      string    `json:"timeLogId"`
	ProjectID      string    `json:"projectId"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Hours          float64   `json:"hours"`
	SubmittingUser string    `json:"submittingUser"`
	ForUserEmail   string    `json:"forUserEmail"`
	SubmittedOn    time.Time `json:"submittedOn"`
}

type MaterialsReceipt struct {
	ReceiptID      string          `json:"receiptId"`
	ProjectID      string          `json:"projectId"`
	VendorID       string          `json:"vendorId"`
	VendorName     string          `json:"vendorName"`
	Amount         decimal.Decimal `json:"amount"`
	ReceiptDocURL  string          `json:"receiptDocUrl"`
	DocID          string          `json:"docId"`
	SubmittingUser string          `json:"submittingUser"`
	ForUserEmail   string          `json:"forUserEmail"`
	SubmittedOn    time.Time       `json:"submittedOn"`
}

type SubInvoice struct {
	InvoiceID      string          `json:"invoiceId"`
	ProjectID      string          `json:"projectId"`
	ProjectName    string          `json:"projectName"`
	SubID          string          `json:"subId"`
	SubName        string          `json:"subName"`
	InvoiceAmount  decimal.Decimal `json:"invoiceAmount"`
	InvoiceDocURL  string          `json:"invoiceDocUrl"`
	DocID          string          `json:"docId"`
	SubmittingUser string          `json:"submittingUser"`
	SubmittedOn    time.Time       `json:"submittedOn"`
}

// StoredFile is a binary object kept by the external file store.
type StoredFile struct {
	FileID   string `json:"fileId"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"size"`
}
