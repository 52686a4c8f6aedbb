package response

import (
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase"

	"github.com/shopspring/decimal"
)

type EstimateDocumentResponse struct {
	EstimateID string `json:"estimateId"`
	DocURL     string `json:"docUrl"`
	DocID      string `json:"docId"`
}

func FromEstimateDocument(d usecase.EstimateDocument) EstimateDocumentResponse {
	return EstimateDocumentResponse{EstimateID: d.EstimateID, DocURL: d.DocURL, DocID: d.DocID}
}

func FromEstimateStatusChange(c usecase.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{EstimateID: c.ID, OldStatus: c.OldStatus, NewStatus: c.NewStatus}
}

type EstimateTemplateResponse struct {
	ProjectID         string                `json:"projectId"`
	EstimateAmount    decimal.Decimal       `json:"estimateAmount"`
	ContingencyAmount decimal.Decimal       `json:"contingencyAmount"`
	SiteLocation      entities.SiteLocation `json:"siteLocation"`
}

func FromEstimateTemplate(t usecase.EstimateTemplate) EstimateTemplateResponse {
	return EstimateTemplateResponse(t)
}
