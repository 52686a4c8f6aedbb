// Package workspace is a filesystem-backed stand-in for the external folder,
// document templating and file storage services.
//
// Every folder is a directory named by its id directly under the workspace
// root, with a metadata file describing its name, parent and sharing.
// Documents and files are written inside their folder and addressed as
// PublicBaseURL/<id>.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"akc_operations/internal/config"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFolderNotFound   = interfaces.ErrFolderNotFound
	ErrTemplateNotFound = errors.New("template not found")
	ErrFileNotFound     = errors.New("file not found")
)

const metaFile = ".folder.json"

type folderMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parentId"`
	SharedTo  []string  `json:"sharedTo,omitempty"`
	CreatedOn time.Time `json:"createdOn"`
}

// Workspace implements the folder service, document renderer and file store
// on the local filesystem.
type Workspace struct {
	root         string
	baseURL      string
	templatesDir string
	newID        func() string
}

var (
	_ interfaces.IFolderService    = (*Workspace)(nil)
	_ interfaces.IDocumentRenderer = (*Workspace)(nil)
	_ interfaces.IFileStore        = (*Workspace)(nil)
)

func New(folders config.FolderConfig, templates config.TemplateConfig) (*Workspace, error) {
	if err := os.MkdirAll(folders.WorkspaceRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}
	return &Workspace{
		root:         folders.WorkspaceRoot,
		baseURL:      strings.TrimRight(folders.PublicBaseURL, "/"),
		templatesDir: templates.Dir,
		newID:        uuid.NewString,
	}, nil
}

func (w *Workspace) url(id string) string {
	return w.baseURL + "/" + id
}

func (w *Workspace) folderPath(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: %q", ErrFolderNotFound, id)
	}
	return filepath.Join(w.root, id), nil
}

func (w *Workspace) readMeta(id string) (folderMeta, string, error) {
	dir, err := w.folderPath(id)
	if err != nil {
		return folderMeta{}, "", err
	}
	raw, err := os.ReadFile(filepath.Join(dir, metaFile))
	if errors.Is(err, os.ErrNotExist) {
		return folderMeta{}, "", fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	if err != nil {
		return folderMeta{}, "", err
	}
	var m folderMeta
	if err := json.Unmarshal(raw, &m); err != nil {
		return folderMeta{}, "", fmt.Errorf("folder %s metadata: %w", id, err)
	}
	return m, dir, nil
}

func writeMeta(dir string, m folderMeta) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, metaFile), raw, 0o644)
}

func (w *Workspace) createFolder(name, parentID string) (string, error) {
	id := w.newID()
	dir, err := w.folderPath(id)
	if err != nil {
		return "", err
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("create folder %s: %w", name, err)
	}
	m := folderMeta{ID: id, Name: name, ParentID: parentID, CreatedOn: time.Now().UTC()}
	if err := writeMeta(dir, m); err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("create folder %s: %w", name, err)
	}
	return id, nil
}

// CreateProjectFolders creates the project folder and its three module
// subfolders. On failure the folders created so far are removed.
func (w *Workspace) CreateProjectFolders(ctx context.Context, parentID, projectName string) (entities.ProjectFolders, error) {
	if err := ctx.Err(); err != nil {
		return entities.ProjectFolders{}, err
	}

	var f entities.ProjectFolders
	root, err := w.createFolder(projectName, parentID)
	if err != nil {
		return f, err
	}
	f.Root = root

	for _, sub := range []struct {
		name string
		dst  *string
	}{
		{"Estimates", &f.Estimates},
		{"Materials", &f.Materials},
		{"SubInvoices", &f.SubInvoices},
	} {
		id, err := w.createFolder(sub.name, root)
		if err != nil {
			for _, created := range f.IDs() {
				_ = w.DeleteFolder(ctx, created)
			}
			return entities.ProjectFolders{}, err
		}
		*sub.dst = id
	}
	return f, nil
}

func (w *Workspace) DeleteFolder(ctx context.Context, folderID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, dir, err := w.readMeta(folderID)
	if err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

// ShareWithDomain records that everyone in domain may edit the folder.
func (w *Workspace) ShareWithDomain(ctx context.Context, folderID, domain string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return errors.New("share domain is empty")
	}
	m, dir, err := w.readMeta(folderID)
	if err != nil {
		return err
	}
	for _, d := range m.SharedTo {
		if strings.EqualFold(d, domain) {
			return nil
		}
	}
	m.SharedTo = append(m.SharedTo, domain)
	return writeMeta(dir, m)
}

// Store writes the upload into its folder as <id><ext>.
func (w *Workspace) Store(ctx context.Context, f interfaces.FileUpload) (entities.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return entities.StoredFile{}, err
	}
	_, dir, err := w.readMeta(f.FolderID)
	if err != nil {
		return entities.StoredFile{}, err
	}

	id := w.newID()
	name := filepath.Base(strings.TrimSpace(f.Name))
	if name == "." || name == string(filepath.Separator) {
		name = id
	}
	if err := os.WriteFile(filepath.Join(dir, id+filepath.Ext(name)), f.Data, 0o644); err != nil {
		return entities.StoredFile{}, fmt.Errorf("store %s: %w", name, err)
	}
	return entities.StoredFile{
		FileID:   id,
		URL:      w.url(id),
		Name:     name,
		MIMEType: f.MIMEType,
		Size:     int64(len(f.Data)),
	}, nil
}

// Locate returns the path of a stored file or rendered document by id.
func (w *Workspace) Locate(fileID string) (string, error) {
	if fileID == "" || strings.ContainsAny(fileID, `/\*?[`) {
		return "", ErrFileNotFound
	}
	matches, err := filepath.Glob(filepath.Join(w.root, "*", fileID+"*"))
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		base := filepath.Base(m)
		if base == fileID || strings.HasPrefix(base, fileID+".") || strings.HasPrefix(base, fileID+"-") {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFileNotFound, fileID)
}
