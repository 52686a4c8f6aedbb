package response

import (
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/money"
)

// MaterialsReceiptResponse adds the display amount to the stored receipt.
type MaterialsReceiptResponse struct {
	entities.MaterialsReceipt
	FormattedAmount string `json:"formattedAmount"`
}

func FromMaterialsReceipt(m entities.MaterialsReceipt) MaterialsReceiptResponse {
	return MaterialsReceiptResponse{MaterialsReceipt: m, FormattedAmount: money.FormatUSD(m.Amount)}
}

func FromMaterialsReceipts(ms []entities.MaterialsReceipt) []MaterialsReceiptResponse {
	out := make([]MaterialsReceiptResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaterialsReceipt(m))
	}
	return out
}

type SubInvoiceResponse struct {
	entities.SubInvoice
	FormattedAmount string `json:"formattedAmount"`
}

func FromSubInvoice(s entities.SubInvoice) SubInvoiceResponse {
	return SubInvoiceResponse{SubInvoice: s, FormattedAmount: money.FormatUSD(s.InvoiceAmount)}
}

func FromSubInvoices(ss []entities.SubInvoice) []SubInvoiceResponse {
	out := make([]SubInvoiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSubInvoice(s))
	}
	return out
}

type RecordIDResponse struct {
	ID string `json:"id"`
}
