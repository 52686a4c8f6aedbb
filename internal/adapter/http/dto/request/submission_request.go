package request

import "akc_operations/internal/usecase"

type TimeLogRequest struct {
	ProjectID    string `json:"projectId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	ForUserEmail string `json:"forUserEmail"`
}

func (r TimeLogRequest) ToInput() usecase.TimeLogInput {
	return usecase.TimeLogInput(r)
}

type UpdateTimeLogRequest struct {
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	ForUserEmail string `json:"forUserEmail"`
}

func (r UpdateTimeLogRequest) ToInput(id string) usecase.UpdateTimeLogInput {
	return usecase.UpdateTimeLogInput{
		TimeLogID:    id,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		ForUserEmail: r.ForUserEmail,
	}
}

type MaterialsReceiptRequest struct {
	ProjectID     string `json:"projectId"`
	VendorID      string `json:"vendorId"`
	VendorName    string `json:"vendorName"`
	Amount        Amount `json:"amount"`
	ReceiptDocURL string `json:"receiptDocURL"`
	DocID         string `json:"docId"`
	ForUserEmail  string `json:"forUserEmail"`
}

func (r MaterialsReceiptRequest) ToInput() usecase.MaterialsReceiptInput {
	return usecase.MaterialsReceiptInput{
		ProjectID:     r.ProjectID,
		VendorID:      r.VendorID,
		VendorName:    r.VendorName,
		Amount:        r.Amount.Decimal,
		ReceiptDocURL: r.ReceiptDocURL,
		DocID:         r.DocID,
		ForUserEmail:  r.ForUserEmail,
	}
}

type SubInvoiceRequest struct {
	ProjectID     string `json:"projectId"`
	ProjectName   string `json:"projectName"`
	SubID         string `json:"subId"`
	SubName       string `json:"subName"`
	InvoiceAmount Amount `json:"invoiceAmount"`
	InvoiceDocURL string `json:"invoiceDocURL"`
	DocID         string `json:"docId"`
}

func (r SubInvoiceRequest) ToInput() usecase.SubInvoiceInput {
	return usecase.SubInvoiceInput{
		ProjectID:     r.ProjectID,
		ProjectName:   r.ProjectName,
		SubID:         r.SubID,
		SubName:       r.SubName,
		InvoiceAmount: r.InvoiceAmount.Decimal,
		InvoiceDocURL: r.InvoiceDocURL,
		DocID:         r.DocID,
	}
}

// UploadRequest carries a data URL (data:<mime>;base64,<payload>).
type UploadRequest struct {
	Base64Data string `json:"base64Data"`
	FolderID   string `json:"folderId"`
	FileType   string `json:"fileType"`
}

func (r UploadRequest) ToInput() usecase.UploadInput {
	return usecase.UploadInput{DataURL: r.Base64Data, FolderID: r.FolderID, FileType: r.FileType}
}
