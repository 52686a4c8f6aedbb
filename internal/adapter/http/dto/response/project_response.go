package response

import (
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase"
)

func FromProjectStatusChange(c usecase.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{ProjectID: c.ID, OldStatus: c.OldStatus, NewStatus: c.NewStatus}
}

// IntentResponse is a project creation intent as shown to operators.
type IntentResponse struct {
	IntentID    string                  `json:"intentId"`
	ProjectID   string                  `json:"projectId"`
	ProjectName string                  `json:"projectName"`
	State       string                  `json:"state"`
	Folders     entities.ProjectFolders `json:"folders"`
	Error       string                  `json:"error,omitempty"`
	UpdatedOn   string                  `json:"updatedOn"`
	NeedsAction bool                    `json:"needsAction"`
}

func FromIntent(in entities.ProjectIntent) IntentResponse {
	return IntentResponse{
		IntentID:    in.IntentID,
		ProjectID:   in.ProjectID,
		ProjectName: in.ProjectName,
		State:       string(in.State),
		Folders:     in.Folders,
		Error:       in.Error,
		UpdatedOn:   formatTime(in.UpdatedOn),
		NeedsAction: !in.State.Settled(),
	}
}

func FromIntents(ins []entities.ProjectIntent) []IntentResponse {
	out := make([]IntentResponse, 0, len(ins))
	for _, in := range ins {
		out = append(out, FromIntent(in))
	}
	return out
}
