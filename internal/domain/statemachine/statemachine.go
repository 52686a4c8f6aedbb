// Package statemachine enforces the lifecycle tables of projects and estimates.
package statemachine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"akc_operations/internal/domain/entities"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrUnknownEntityType = errors.New("entity type has no status lifecycle")
)

// TransitionError describes a rejected transition. It matches
// ErrInvalidTransition or ErrUnknownStatus through errors.Is.
type TransitionError struct {
	EntityType entities.EntityType
	From       string
	To         string
	Allowed    []string
	kind       error
}

func (e *TransitionError) Error() string {
	if e.kind == ErrUnknownStatus {
		return fmt.Sprintf("Unknown %s status: %s", strings.ToLower(string(e.EntityType)), e.From)
	}
	from := e.From
	if from == "" {
		from = "(none)"
	}
	return fmt.Sprintf("Invalid %s status transition from %s to %s", strings.ToLower(string(e.EntityType)), from, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == e.kind
}

// Lifecycle is one entity's transition table.
type Lifecycle struct {
	Initial     string
	Transitions map[string][]string
}

// Machine validates transitions against a fixed set of lifecycles. It is
// immutable after construction and safe for concurrent use.
type Machine struct {
	lifecycles map[entities.EntityType]Lifecycle
}

// New builds a Machine, rejecting tables whose targets are not themselves
// keys of the table.
func New(lifecycles map[entities.EntityType]Lifecycle) (*Machine, error) {
	copied := make(map[entities.EntityType]Lifecycle, len(lifecycles))
	for et, lc := range lifecycles {
		if _, ok := lc.Transitions[lc.Initial]; !ok {
			return nil, fmt.Errorf("%s: initial status %q is not in the table", et, lc.Initial)
		}
		table := make(map[string][]string, len(lc.Transitions))
		for from, targets := range lc.Transitions {
			for _, to := range targets {
				if _, ok := lc.Transitions[to]; !ok {
					return nil, fmt.Errorf("%s: transition %s -> %s targets a status missing from the table", et, from, to)
				}
			}
			table[from] = append([]string(nil), targets...)
		}
		copied[et] = Lifecycle{Initial: lc.Initial, Transitions: table}
	}
	return &Machine{lifecycles: copied}, nil
}

// Default returns the machine for the PROJECT and ESTIMATE lifecycles.
func Default() *Machine {
	m, err := New(map[entities.EntityType]Lifecycle{
		entities.EntityProject:  ProjectLifecycle(),
		entities.EntityEstimate: EstimateLifecycle(),
	})
	if err != nil {
		panic(err)
	}
	return m
}

func ProjectLifecycle() Lifecycle {
	return Lifecycle{
		Initial: string(entities.ProjectStatusPending),
		Transitions: map[string][]string{
			string(entities.ProjectStatusPending):    {string(entities.ProjectStatusApproved), string(entities.ProjectStatusCanceled)},
			string(entities.ProjectStatusApproved):   {string(entities.ProjectStatusInProgress), string(entities.ProjectStatusCanceled)},
			string(entities.ProjectStatusInProgress): {string(entities.ProjectStatusCompleted), string(entities.ProjectStatusCanceled)},
			string(entities.ProjectStatusCompleted):  {string(entities.ProjectStatusClosed)},
			string(entities.ProjectStatusCanceled):   {},
			string(entities.ProjectStatusClosed):     {},
		},
	}
}

func EstimateLifecycle() Lifecycle {
	return Lifecycle{
		Initial: string(entities.EstimateStatusPending),
		Transitions: map[string][]string{
			string(entities.EstimateStatusPending):   {string(entities.EstimateStatusApproved), string(entities.EstimateStatusRejected), string(entities.EstimateStatusCanceled)},
			string(entities.EstimateStatusApproved):  {string(entities.EstimateStatusCompleted), string(entities.EstimateStatusCanceled)},
			string(entities.EstimateStatusRejected):  {string(entities.EstimateStatusPending), string(entities.EstimateStatusCanceled)},
			string(entities.EstimateStatusCompleted): {string(entities.EstimateStatusClosed)},
			string(entities.EstimateStatusCanceled):  {},
			string(entities.EstimateStatusClosed):    {},
		},
	}
}

// Normalize trims and upper-cases a stored status cell.
func Normalize(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// ValidateTransition accepts oldStatus -> newStatus when the table lists it.
// An empty oldStatus means the record is being created and only the initial
// status is accepted.
func (m *Machine) ValidateTransition(et entities.EntityType, oldStatus, newStatus string) error {
	lc, ok := m.lifecycles[et]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntityType, et)
	}
	from, to := Normalize(oldStatus), Normalize(newStatus)

	if from == "" {
		if to == lc.Initial {
			return nil
		}
		return &TransitionError{EntityType: et, From: from, To: to, Allowed: []string{lc.Initial}, kind: ErrInvalidTransition}
	}

	targets, ok := lc.Transitions[from]
	if !ok {
		return &TransitionError{EntityType: et, From: from, To: to, kind: ErrUnknownStatus}
	}
	for _, t := range targets {
		if t == to {
			return nil
		}
	}
	return &TransitionError{EntityType: et, From: from, To: to, Allowed: append([]string(nil), targets...), kind: ErrInvalidTransition}
}

// Initial returns the status a new record of the given type starts in.
func (m *Machine) Initial(et entities.EntityType) (string, error) {
	lc, ok := m.lifecycles[et]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEntityType, et)
	}
	return lc.Initial, nil
}

// IsTerminal reports whether no transition leaves the status.
func (m *Machine) IsTerminal(et entities.EntityType, status string) bool {
	lc, ok := m.lifecycles[et]
	if !ok {
		return false
	}
	targets, ok := lc.Transitions[Normalize(status)]
	return ok && len(targets) == 0
}

// Statuses lists every status of the lifecycle, sorted.
func (m *Machine) Statuses(et entities.EntityType) []string {
	lc := m.lifecycles[et]
	out := make([]string, 0, len(lc.Transitions))
	for s := range lc.Transitions {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// moduleAccessStatuses are the project statuses under which child records
// (time logs, materials receipts, subcontractor invoices) may be created.
var moduleAccessStatuses = map[entities.ProjectStatus]bool{
	entities.ProjectStatusApproved:   true,
	entities.ProjectStatusInProgress: true,
}

func ModuleAccessAllowed(status entities.ProjectStatus) bool {
	return moduleAccessStatuses[entities.ProjectStatus(Normalize(string(status)))]
}

func ModuleVisibility(status entities.ProjectStatus) entities.ModuleVisibility {
	allowed := ModuleAccessAllowed(status)
	return entities.ModuleVisibility{TimeLogging: allowed, MaterialsReceipts: allowed, SubInvoices: allowed}
}
