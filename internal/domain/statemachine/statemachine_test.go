package statemachine

import (
	"errors"
	"testing"

	"akc_operations/internal/domain/entities"
)

func TestValidateTransition_Project(t *testing.T) {
	m := Default()

	cases := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "create pending", from: "", to: "PENDING"},
		{name: "create approved rejected", from: "", to: "APPROVED", wantErr: ErrInvalidTransition},
		{name: "pending approved", from: "PENDING", to: "APPROVED"},
		{name: "pending canceled", from: "PENDING", to: "CANCELED"},
		{name: "approved in progress", from: "APPROVED", to: "IN_PROGRESS"},
		{name: "in progress completed", from: "IN_PROGRESS", to: "COMPLETED"},
		{name: "in progress canceled", from: "IN_PROGRESS", to: "CANCELED"},
		{name: "completed closed", from: "COMPLETED", to: "CLOSED"},
		{name: "pending completed", from: "PENDING", to: "COMPLETED", wantErr: ErrInvalidTransition},
		{name: "completed canceled", from: "COMPLETED", to: "CANCELED", wantErr: ErrInvalidTransition},
		{name: "closed is terminal", from: "CLOSED", to: "PENDING", wantErr: ErrInvalidTransition},
		{name: "canceled is terminal", from: "CANCELED", to: "APPROVED", wantErr: ErrInvalidTransition},
		{name: "unknown old status", from: "ON_HOLD", to: "APPROVED", wantErr: ErrUnknownStatus},
		{name: "legacy spelling is unknown", from: "CANCELLED", to: "PENDING", wantErr: ErrUnknownStatus},
		{name: "cells are normalized", from: " pending ", to: "approved"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := m.ValidateTransition(entities.EntityProject, tc.from, tc.to)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateTransition_Estimate(t *testing.T) {
	m := Default()

	cases := []struct {
		from, to string
		ok       bool
	}{
		{"PENDING", "APPROVED", true},
		{"PENDING", "REJECTED", true},
		{"PENDING", "CANCELED", true},
		{"REJECTED", "PENDING", true},
		{"REJECTED", "CANCELED", true},
		{"APPROVED", "COMPLETED", true},
		{"APPROVED", "CANCELED", true},
		{"COMPLETED", "CLOSED", true},
		{"APPROVED", "PENDING", false},
		{"REJECTED", "APPROVED", false},
		{"CLOSED", "COMPLETED", false},
	}
	for _, tc := range cases {
		err := m.ValidateTransition(entities.EntityEstimate, tc.from, tc.to)
		if tc.ok && err != nil {
			t.Fatalf("%s -> %s: expected ok, got %v", tc.from, tc.to, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s -> %s: expected invalid transition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestUnknownStatusIsDistinct(t *testing.T) {
	err := Default().ValidateTransition(entities.EntityEstimate, "DRAFT", "PENDING")
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected unknown status, got %v", err)
	}
	if errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unknown status must not match invalid transition")
	}
	var te *TransitionError
	if !errors.As(err, &te) || te.From != "DRAFT" {
		t.Fatalf("expected TransitionError with From=DRAFT, got %v", err)
	}
	if err.Error() != "Unknown estimate status: DRAFT" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUnknownEntityType(t *testing.T) {
	err := Default().ValidateTransition(entities.EntityVendor, "ACTIVE", "INACTIVE")
	if !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected unknown entity type, got %v", err)
	}
}

func TestDefaultTablesAreClosed(t *testing.T) {
	for _, lc := range []Lifecycle{ProjectLifecycle(), EstimateLifecycle()} {
		for from, targets := range lc.Transitions {
			for _, to := range targets {
				if _, ok := lc.Transitions[to]; !ok {
					t.Fatalf("%s -> %s targets a missing status", from, to)
				}
			}
		}
	}
}

func TestNewRejectsDanglingTarget(t *testing.T) {
	_, err := New(map[entities.EntityType]Lifecycle{
		entities.EntityProject: {
			Initial:     "PENDING",
			Transitions: map[string][]string{"PENDING": {"ARCHIVED"}},
		},
	})
	if err == nil {
		t.Fatalf("expected dangling target error")
	}
}

func TestTerminalAndModuleAccess(t *testing.T) {
	m := Default()
	if !m.IsTerminal(entities.EntityProject, "CLOSED") || !m.IsTerminal(entities.EntityProject, "CANCELED") {
		t.Fatalf("expected CLOSED and CANCELED terminal")
	}
	if m.IsTerminal(entities.EntityProject, "COMPLETED") {
		t.Fatalf("COMPLETED is not terminal")
	}

	for status, want := range map[entities.ProjectStatus]bool{
		entities.ProjectStatusPending:    false,
		entities.ProjectStatusApproved:   true,
		entities.ProjectStatusInProgress: true,
		entities.ProjectStatusCompleted:  false,
		entities.ProjectStatusCanceled:   false,
		entities.ProjectStatusClosed:     false,
	} {
		if got := ModuleAccessAllowed(status); got != want {
			t.Fatalf("%s: expected %v, got %v", status, want, got)
		}
	}

	v := ModuleVisibility(entities.ProjectStatusInProgress)
	if !v.TimeLogging || !v.MaterialsReceipts || !v.SubInvoices {
		t.Fatalf("expected all modules visible, got %+v", v)
	}
}
