package interfaces

//go:generate mockgen -source=workspace_interfaces.go -destination=mocks/workspace_interfaces_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"akc_operations/internal/domain/entities"
)

// ErrFolderNotFound is returned by collaborators addressing a folder that
// does not exist.
var ErrFolderNotFound = errors.New("folder not found")

// IFolderService abstracts the external folder hierarchy holding project
// documents.
type IFolderService interface {
	// CreateProjectFolders creates the project folder under parentID with
	// its Estimates, Materials and SubInvoices subfolders.
	CreateProjectFolders(ctx context.Context, parentID, projectName string) (entities.ProjectFolders, error)
	DeleteFolder(ctx context.Context, folderID string) error
	ShareWithDomain(ctx context.Context, folderID, domain string) error
}

// DocumentRequest asks the templating service for a copy of a template with
// its placeholders replaced.
type DocumentRequest struct {
	TemplateID   string
	FolderID     string
	Name         string
	Replacements map[string]string
	LineItems    []entities.EstimateLineItem
}

type Document struct {
	ID  string
	URL string
}

// IDocumentRenderer abstracts the external document templating service.
type IDocumentRenderer interface {
	Render(ctx context.Context, req DocumentRequest) (Document, error)
}

type FileUpload struct {
	FolderID string
	Name     string
	MIMEType string
	Data     []byte
}

// IFileStore abstracts the external binary object store.
type IFileStore interface {
	Store(ctx context.Context, f FileUpload) (entities.StoredFile, error)
}

// IVerifier polls check until it reports true or gives up.
type IVerifier interface {
	Wait(ctx context.Context, check func(context.Context) (bool, error)) error
}
