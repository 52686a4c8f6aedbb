package usecase

import (
	"errors"
	"testing"

	"akc_operations/internal/adapter/persistence/tabular"
)

func TestRequireFields(t *testing.T) {
	err := requireFields(field{"date", "2024-03-07"}, field{"startTime", " "}, field{"projectId", ""})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err.Error() != "Missing required fields: startTime, projectId" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := requireFields(field{"a", "x"}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestNotFoundFamily(t *testing.T) {
	for _, err := range []error{ErrProjectNotFound, ErrEstimateNotFound, ErrCustomerNotFound, ErrTimeLogNotFound, ErrIntentNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected %v to match ErrNotFound", err)
		}
	}
	if ErrProjectNotFound.Error() != "project not found" {
		t.Fatalf("unexpected message %q", ErrProjectNotFound.Error())
	}
}

func TestExternal(t *testing.T) {
	if external(serviceStorage, nil) != nil {
		t.Fatalf("expected nil passthrough")
	}

	err := external(serviceStorage, tabular.ErrTableNotFound)
	if !errors.Is(err, ErrExternalService) || !errors.Is(err, tabular.ErrTableNotFound) {
		t.Fatalf("expected both sentinels to match, got %v", err)
	}
	if err.Error() != tabular.ErrTableNotFound.Error() {
		t.Fatalf("expected message preserved, got %q", err.Error())
	}

	again := external(serviceFolders, err)
	var ext *ExternalServiceError
	if !errors.As(again, &ext) || ext.Service != serviceStorage {
		t.Fatalf("expected original service to be kept, got %+v", ext)
	}
}
