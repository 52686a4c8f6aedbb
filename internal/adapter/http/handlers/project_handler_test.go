package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"akc_operations/internal/adapter/http/handlers/mocks"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/statemachine"
	"akc_operations/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newRouter()
		r.POST("/v1/projects", NewProjectHandler(uc).CreateProject)

		w := performRequest(r, http.MethodPost, "/v1/projects", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Success || env.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected body %+v", env)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().
			CreateProject(gomock.Any(), usecase.CreateProjectInput{
				CustomerID:   "24-001",
				ProjectName:  "Kitchen",
				SiteLocation: entities.SiteLocation{Address: "1 Main St", City: "Austin", State: "TX", Zip: "78701"},
			}).
			Return(entities.Project{ProjectID: "AKC-0001", ProjectName: "Kitchen", Status: "PENDING"}, nil)

		r := newRouter()
		r.POST("/v1/projects", NewProjectHandler(uc).CreateProject)

		body := `{"customerId":"24-001","projectName":"Kitchen","siteLocation":{"address":"1 Main St","city":"Austin","state":"TX","zip":"78701"}}`
		w := performRequest(r, http.MethodPost, "/v1/projects", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		var project entities.Project
		if err := json.Unmarshal(env.Data, &project); err != nil {
			t.Fatalf("decode project: %v", err)
		}
		if !env.Success || project.ProjectID != "AKC-0001" {
			t.Fatalf("unexpected response %s", w.Body.String())
		}
	})

	t.Run("folder failure is a bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			Return(entities.Project{}, &usecase.ExternalServiceError{Service: "folders", Err: errors.New("quota exceeded")})

		r := newRouter()
		r.POST("/v1/projects", NewProjectHandler(uc).CreateProject)

		w := performRequest(r, http.MethodPost, "/v1/projects", `{"customerId":"24-001"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Error != "An external service failed" {
			t.Fatalf("expected generic message, got %q", env.Error)
		}
	})
}

func TestProjectHandler_UpdateProjectStatus(t *testing.T) {
	t.Run("returns the change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().UpdateProjectStatus(gomock.Any(), "AKC-0001", "APPROVED").
			Return(usecase.StatusChange{ID: "AKC-0001", OldStatus: "PENDING", NewStatus: "APPROVED"}, nil)

		r := newRouter()
		r.PATCH("/v1/projects/:project_id/status", NewProjectHandler(uc).UpdateProjectStatus)

		w := performRequest(r, http.MethodPatch, "/v1/projects/AKC-0001/status", `{"status":"APPROVED"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if string(env.Data) != `{"projectId":"AKC-0001","oldStatus":"PENDING","newStatus":"APPROVED"}` {
			t.Fatalf("unexpected data %s", env.Data)
		}
	})

	t.Run("rejected transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().UpdateProjectStatus(gomock.Any(), "AKC-0001", "PENDING").
			Return(usecase.StatusChange{}, &statemachine.TransitionError{EntityType: entities.EntityProject, From: "COMPLETED", To: "PENDING"})

		r := newRouter()
		r.PATCH("/v1/projects/:project_id/status", NewProjectHandler(uc).UpdateProjectStatus)

		w := performRequest(r, http.MethodPatch, "/v1/projects/AKC-0001/status", `{"status":"PENDING"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestProjectHandler_Reads(t *testing.T) {
	t.Run("active projects default to an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().GetActiveProjects(gomock.Any()).Return(nil, nil)

		r := newRouter()
		r.GET("/v1/projects/active", NewProjectHandler(uc).GetActiveProjects)

		w := performRequest(r, http.MethodGet, "/v1/projects/active", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); string(env.Data) != "[]" {
			t.Fatalf("expected [], got %s", env.Data)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().GetProject(gomock.Any(), "AKC-0404").Return(entities.Project{}, usecase.ErrProjectNotFound)

		r := newRouter()
		r.GET("/v1/projects/:project_id", NewProjectHandler(uc).GetProject)

		w := performRequest(r, http.MethodGet, "/v1/projects/AKC-0404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("module visibility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().GetModuleVisibility(gomock.Any(), "AKC-0001").
			Return(entities.ModuleVisibility{TimeLogging: true, MaterialsReceipts: true, SubInvoices: true}, nil)

		r := newRouter()
		r.GET("/v1/projects/:project_id/modules", NewProjectHandler(uc).GetModuleVisibility)

		w := performRequest(r, http.MethodGet, "/v1/projects/AKC-0001/modules", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var vis entities.ModuleVisibility
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &vis); err != nil || !vis.TimeLogging {
			t.Fatalf("unexpected visibility %s", w.Body.String())
		}
	})
}

func TestProjectHandler_Intents(t *testing.T) {
	t.Run("list by state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().ListIntents(gomock.Any(), "FAILED").
			Return([]entities.ProjectIntent{{IntentID: "INT-1", State: entities.IntentFailed}}, nil)

		r := newRouter()
		r.GET("/v1/projects/intents", NewProjectHandler(uc).ListIntents)

		w := performRequest(r, http.MethodGet, "/v1/projects/intents?state=FAILED", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var intents []map[string]any
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &intents); err != nil {
			t.Fatalf("decode intents: %v", err)
		}
		if len(intents) != 1 || intents[0]["needsAction"] != true {
			t.Fatalf("unexpected intents %v", intents)
		}
	})

	t.Run("cleanup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().CleanupProjectCreation(gomock.Any(), "INT-1").
			Return(entities.ProjectIntent{IntentID: "INT-1", State: entities.IntentCompensated}, nil)

		r := newRouter()
		r.POST("/v1/projects/intents/:intent_id/cleanup", NewProjectHandler(uc).CleanupProjectCreation)

		w := performRequest(r, http.MethodPost, "/v1/projects/intents/INT-1/cleanup", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
