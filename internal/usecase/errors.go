package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrExternalService = errors.New("external service failure")

	ErrProjectNotFound  = fmt.Errorf("project %w", ErrNotFound)
	ErrEstimateNotFound = fmt.Errorf("estimate %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrTimeLogNotFound  = fmt.Errorf("time log %w", ErrNotFound)
	ErrIntentNotFound   = fmt.Errorf("project intent %w", ErrNotFound)

	ErrModuleAccessDenied  = errors.New("project must be APPROVED or IN_PROGRESS")
	ErrUnsupportedFileType = errors.New("file type is not allowed")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)

// ValidationError reports missing or malformed input. It matches
// ErrValidation through errors.Is.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type field struct {
	name  string
	value string
}

// requireFields returns a ValidationError naming every blank field, in order.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}

// ExternalServiceError wraps a failure of storage, templating, folders or
// the file store. Its message is the wrapped error's, unchanged.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string { return e.Err.Error() }

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

func external(service string, err error) error {
	if err == nil {
		return nil
	}
	var ext *ExternalServiceError
	if errors.As(err, &ext) {
		return err
	}
	return &ExternalServiceError{Service: service, Err: err}
}

const (
	serviceStorage    = "storage"
	serviceFolders    = "folders"
	serviceTemplating = "templating"
	serviceFiles      = "files"
)
