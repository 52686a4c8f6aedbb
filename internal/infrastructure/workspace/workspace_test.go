package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"akc_operations/internal/config"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w, err := New(
		config.FolderConfig{WorkspaceRoot: t.TempDir(), PublicBaseURL: "http://files.local/"},
		config.TemplateConfig{Dir: t.TempDir()},
	)
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	return w
}

func TestCreateAndDeleteProjectFolders(t *testing.T) {
	ctx := context.Background()
	w := newWorkspace(t)

	f, err := w.CreateProjectFolders(ctx, "projects", "Kitchen remodel")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(f.IDs()) != 4 {
		t.Fatalf("expected 4 folders, got %+v", f)
	}
	m, _, err := w.readMeta(f.Estimates)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m.ParentID != f.Root || m.Name != "Estimates" {
		t.Fatalf("unexpected metadata %+v", m)
	}

	for _, id := range f.IDs() {
		if err := w.DeleteFolder(ctx, id); err != nil {
			t.Fatalf("delete %s: %v", id, err)
		}
	}
	if err := w.DeleteFolder(ctx, f.Root); !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestCreateProjectFolders_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	w := newWorkspace(t)
	calls := 0
	w.newID = func() string {
		calls++
		if calls == 3 {
			return "../escape"
		}
		return "folder-" + string(rune('a'+calls))
	}

	if _, err := w.CreateProjectFolders(ctx, "projects", "Broken"); err == nil {
		t.Fatalf("expected error")
	}
	entries, _ := os.ReadDir(w.root)
	if len(entries) != 0 {
		t.Fatalf("expected created folders to be removed, found %d", len(entries))
	}
}

func TestShareWithDomain(t *testing.T) {
	ctx := context.Background()
	w := newWorkspace(t)
	f, _ := w.CreateProjectFolders(ctx, "projects", "Deck")

	for range 2 {
		if err := w.ShareWithDomain(ctx, f.Root, "akc.com"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	m, _, _ := w.readMeta(f.Root)
	if len(m.SharedTo) != 1 || m.SharedTo[0] != "akc.com" {
		t.Fatalf("expected one share, got %v", m.SharedTo)
	}
	if err := w.ShareWithDomain(ctx, f.Root, " "); err == nil {
		t.Fatalf("expected error for empty domain")
	}
	if err := w.ShareWithDomain(ctx, "missing", "akc.com"); !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	w := newWorkspace(t)
	f, _ := w.CreateProjectFolders(ctx, "projects", "Deck")

	doc, err := w.Render(ctx, interfaces.DocumentRequest{
		TemplateID: "estimate",
		FolderID:   f.Estimates,
		Name:       "Estimate-EST-P-1",
		Replacements: map[string]string{
			"{{EstimateNumber}}": "EST-P-1",
			"{{EstimateAmount}}": "$1,250.00",
		},
		LineItems: []entities.EstimateLineItem{
			{ItemService: "Framing", Description: "Deck frame", QtyHours: "10", Rate: decimal.NewFromInt(50), Amount: decimal.NewFromInt(500)},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.URL != "http://files.local/"+doc.ID {
		t.Fatalf("unexpected url %s", doc.URL)
	}

	body, err := os.ReadFile(filepath.Join(w.root, f.Estimates, doc.ID+"-Estimate-EST-P-1.txt"))
	if err != nil {
		t.Fatalf("read rendered document: %v", err)
	}
	for _, want := range []string{"ESTIMATE EST-P-1", "Estimate amount: $1,250.00", "ITEM/SERVICE", "Framing", "$500.00"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in document:\n%s", want, body)
		}
	}
}

func TestRender_CustomTemplate(t *testing.T) {
	ctx := context.Background()
	w := newWorkspace(t)
	f, _ := w.CreateProjectFolders(ctx, "projects", "Deck")
	if err := os.WriteFile(filepath.Join(w.templatesDir, "short.txt"), []byte("No. {{EstimateNumber}}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	if _, err := w.Render(ctx, interfaces.DocumentRequest{TemplateID: "short", FolderID: f.Estimates, Name: "x",
		Replacements: map[string]string{"{{EstimateNumber}}": "EST-P-2"}}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := w.Render(ctx, interfaces.DocumentRequest{TemplateID: "unknown", FolderID: f.Estimates}); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	w := newWorkspace(t)
	f, _ := w.CreateProjectFolders(ctx, "projects", "Deck")

	sf, err := w.Store(ctx, interfaces.FileUpload{FolderID: f.Materials, Name: "../receipt.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sf.Name != "receipt.pdf" || sf.Size != 8 || sf.URL != "http://files.local/"+sf.FileID {
		t.Fatalf("unexpected stored file %+v", sf)
	}
	if _, err := os.Stat(filepath.Join(w.root, f.Materials, sf.FileID+".pdf")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	if _, err := w.Store(ctx, interfaces.FileUpload{FolderID: "nope", Name: "a.pdf"}); !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestLocate(t *testing.T) {
	ctx := context.Background()
	w := newWorkspace(t)
	f, _ := w.CreateProjectFolders(ctx, "projects", "Deck")

	sf, err := w.Store(ctx, interfaces.FileUpload{FolderID: f.Materials, Name: "receipt.png", Data: []byte("png")})
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	path, err := w.Locate(sf.FileID)
	if err != nil {
		t.Fatalf("expected file, got %v", err)
	}
	if filepath.Base(path) != sf.FileID+".png" {
		t.Fatalf("unexpected path %s", path)
	}

	for _, id := range []string{"", "missing", "*", "../x"} {
		if _, err := w.Locate(id); !errors.Is(err, ErrFileNotFound) {
			t.Fatalf("expected ErrFileNotFound for %q, got %v", id, err)
		}
	}
}
