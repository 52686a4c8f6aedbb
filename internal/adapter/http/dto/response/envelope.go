package response

// Envelope wraps every successful response. Failures use pkg.HTTPError,
// which shares the success field.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// StatusChangeResponse reports a validated status update.
type StatusChangeResponse struct {
	ProjectID  string `json:"projectId,omitempty"`
	EstimateID string `json:"estimateId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
	OldStatus  string `json:"oldStatus"`
	NewStatus  string `json:"newStatus"`
}
