package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"akc_operations/internal/config"

	"github.com/gin-gonic/gin"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Storage: config.StorageConfig{Driver: "memory", Bootstrap: true},
		Sheets: config.SheetNames{
			Projects:          "Projects",
			TimeLogs:          "TimeLogs",
			MaterialsReceipts: "MaterialsReceipts",
			Subcontractors:    "Subcontractors",
			SubInvoices:       "Subinvoices",
			Estimates:         "Estimates",
			Customers:         "Customers",
			ActivityLog:       "ActivityLog",
			Vendors:           "Vendors",
			ProjectIntents:    "ProjectIntents",
		},
		Templates: config.TemplateConfig{EstimateTemplateID: "estimate", FilePrefix: "Estimate", Dir: t.TempDir()},
		Folders: config.FolderConfig{
			ParentID:      "projects",
			WorkspaceRoot: t.TempDir(),
			PublicBaseURL: "http://localhost:8080/files",
			ShareDomain:   "akc.com",
		},
		Upload: config.UploadConfig{
			MaxFileSize:      10 << 20,
			AllowedMIMETypes: []string{"image/jpeg", "image/png", "image/gif", "application/pdf"},
		},
		Verify:   config.VerifyConfig{InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond, Timeout: time.Second},
		Identity: config.IdentityConfig{Header: "X-User-Email", DefaultActor: "system@akc.local"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	app, cleanup, err := build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(cleanup)
	return NewRouter(cfg, app)
}

type result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func call(t *testing.T, r http.Handler, method, path, body string, wantStatus int) result {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Email", "pm@akc.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, wantStatus, w.Code, w.Body.String())
	}
	var res result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("%s %s: expected JSON body, got %q", method, path, w.Body.String())
	}
	return res
}

func field(t *testing.T, raw json.RawMessage, name string) string {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	s, _ := m[name].(string)
	return s
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	if res := call(t, r, http.MethodGet, "/v1/ping", "", http.StatusOK); !res.Success {
		t.Fatalf("expected success")
	}
}

func TestProjectLifecycle(t *testing.T) {
	r := newTestRouter(t)

	customer := call(t, r, http.MethodPost, "/v1/customers",
		`{"customerName":"Acme Homes","address":"1 Main St","city":"Austin","state":"TX","zip":"78701"}`, http.StatusCreated)
	customerID := field(t, customer.Data, "customerId")
	if customerID == "" {
		t.Fatalf("expected customer id, got %s", customer.Data)
	}

	project := call(t, r, http.MethodPost, "/v1/projects",
		`{"customerId":"`+customerID+`","projectName":"Kitchen Remodel","jobDescription":"Full remodel"}`, http.StatusCreated)
	projectID := field(t, project.Data, "projectId")
	if projectID == "" {
		t.Fatalf("expected project id, got %s", project.Data)
	}

	t.Run("child records are gated while pending", func(t *testing.T) {
		res := call(t, r, http.MethodPost, "/v1/time-logs",
			`{"projectId":"`+projectID+`","date":"2024-03-07","startTime":"08:00","endTime":"12:00"}`, http.StatusConflict)
		if res.Code != "MODULE_ACCESS_DENIED" {
			t.Fatalf("expected MODULE_ACCESS_DENIED, got %s", res.Code)
		}
	})

	t.Run("estimate document is rendered and served", func(t *testing.T) {
		est := call(t, r, http.MethodPost, "/v1/estimates",
			`{"projectId":"`+projectID+`","estimateAmount":"$2,500.00","contingencyAmount":250}`, http.StatusCreated)
		docURL := field(t, est.Data, "docUrl")
		if !strings.HasPrefix(docURL, "http://localhost:8080/files/") {
			t.Fatalf("unexpected doc url %q", docURL)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/"+field(t, est.Data, "docId"), nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "$2,500.00") {
			t.Fatalf("expected rendered document, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("approval opens the modules", func(t *testing.T) {
		change := call(t, r, http.MethodPatch, "/v1/projects/"+projectID+"/status", `{"status":"APPROVED"}`, http.StatusOK)
		if field(t, change.Data, "oldStatus") != "PENDING" || field(t, change.Data, "newStatus") != "APPROVED" {
			t.Fatalf("unexpected change %s", change.Data)
		}

		call(t, r, http.MethodPost, "/v1/time-logs",
			`{"projectId":"`+projectID+`","date":"2024-03-07","startTime":"08:00","endTime":"12:30"}`, http.StatusCreated)

		call(t, r, http.MethodPatch, "/v1/projects/"+projectID+"/status", `{"status":"PENDING"}`, http.StatusConflict)
	})

	t.Run("activity is recorded with the actor", func(t *testing.T) {
		res := call(t, r, http.MethodGet, "/v1/activity?module_type=project&reference_id="+projectID, "", http.StatusOK)
		var entries []map[string]any
		if err := json.Unmarshal(res.Data, &entries); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(entries) < 2 {
			t.Fatalf("expected created and status entries, got %v", entries)
		}
		for _, e := range entries {
			if e["userEmail"] != "pm@akc.com" {
				t.Fatalf("expected actor pm@akc.com, got %v", e["userEmail"])
			}
		}
	})
}

func TestUnknownFile(t *testing.T) {
	r := newTestRouter(t)
	call(t, r, http.MethodGet, "/files/missing", "", http.StatusNotFound)
}
