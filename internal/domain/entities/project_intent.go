package entities

import "time"

// IntentState tracks a project creation through its side effects.
type IntentState string

const (
	IntentStarted        IntentState = "STARTED"
	IntentFoldersCreated IntentState = "FOLDERS_CREATED"
	IntentCommitted      IntentState = "COMMITTED"
	IntentUnverified     IntentState = "UNVERIFIED"
	IntentFailed         IntentState = "FAILED"
	IntentCompensated    IntentState = "COMPENSATED"
)

var IntentStates = []IntentState{
	IntentStarted, IntentFoldersCreated, IntentCommitted, IntentUnverified, IntentFailed, IntentCompensated,
}

func (s IntentState) Valid() bool {
	for _, v := range IntentStates {
		if s == v {
			return true
		}
	}
	return false
}

// Settled reports whether no further cleanup is possible or needed.
func (s IntentState) Settled() bool {
	return s == IntentCommitted || s == IntentCompensated
}

// ProjectIntent is written before any external side effect of a project
// creation so a failed creation can be found and cleaned up later.
type ProjectIntent struct {
	IntentID    string         `json:"intentId"`
	ProjectID   string         `json:"projectId"`
	CustomerID  string         `json:"customerId"`
	ProjectName string         `json:"projectName"`
	State       IntentState    `json:"state"`
	Folders     ProjectFolders `json:"folders"`
	Error       string         `json:"error,omitempty"`
	CreatedOn   time.Time      `json:"createdOn"`
	UpdatedOn   time.Time      `json:"updatedOn"`
	CreatedBy   string         `json:"createdBy"`
}
