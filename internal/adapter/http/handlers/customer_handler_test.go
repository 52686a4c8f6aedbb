package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"akc_operations/internal/adapter/http/handlers/mocks"
	"akc_operations/internal/domain/entities"
	"akc_operations/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestCustomerHandler(t *testing.T) {
	t.Run("create forwards the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().CreateCustomer(gomock.Any(), usecase.CreateCustomerInput{CustomerName: "Acme", City: "Austin"}).
			Return(entities.Customer{CustomerID: "24-001", CustomerName: "Acme"}, nil)

		r := newRouter()
		r.POST("/v1/customers", NewCustomerHandler(uc).CreateCustomer)

		w := performRequest(r, http.MethodPost, "/v1/customers", `{"customerName":"Acme","city":"Austin"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create reports missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
			Return(entities.Customer{}, &usecase.ValidationError{Fields: []string{"customerName"}})

		r := newRouter()
		r.POST("/v1/customers", NewCustomerHandler(uc).CreateCustomer)

		w := performRequest(r, http.MethodPost, "/v1/customers", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Error != "Missing required fields: customerName" {
			t.Fatalf("unexpected error %q", env.Error)
		}
	})

	t.Run("details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().GetCustomerDetails(gomock.Any(), "24-001").
			Return(usecase.CustomerDetails{
				Customer: entities.Customer{CustomerID: "24-001"},
				Projects: []entities.Project{{ProjectID: "AKC-0001"}},
				Metrics:  usecase.CustomerMetrics{TotalProjects: 1},
			}, nil)

		r := newRouter()
		r.GET("/v1/customers/:customer_id", NewCustomerHandler(uc).GetCustomerDetails)

		w := performRequest(r, http.MethodGet, "/v1/customers/24-001", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var details struct {
			CustomerID string             `json:"customerId"`
			Projects   []entities.Project `json:"projects"`
			Estimates  []any              `json:"estimates"`
			Metrics    struct {
				TotalProjects int `json:"totalProjects"`
			} `json:"metrics"`
		}
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &details); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if details.CustomerID != "24-001" || len(details.Projects) != 1 || details.Metrics.TotalProjects != 1 {
			t.Fatalf("unexpected details %+v", details)
		}
		if details.Estimates == nil {
			t.Fatalf("expected an empty estimates list")
		}
	})

	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().UpdateCustomerStatus(gomock.Any(), "24-001", "ARCHIVED").
			Return(usecase.StatusChange{ID: "24-001", OldStatus: "ACTIVE", NewStatus: "ARCHIVED"}, nil)

		r := newRouter()
		r.PATCH("/v1/customers/:customer_id/status", NewCustomerHandler(uc).UpdateCustomerStatus)

		w := performRequest(r, http.MethodPatch, "/v1/customers/24-001/status", `{"status":"ARCHIVED"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		want := `{"customerId":"24-001","status":"ARCHIVED","previousStatus":"ACTIVE"}`
		if env := decodeEnvelope(t, w); string(env.Data) != want {
			t.Fatalf("expected %s, got %s", want, env.Data)
		}
	})
}

func TestPartyHandler(t *testing.T) {
	t.Run("create vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartyUseCase(ctrl)
		uc.EXPECT().CreateVendor(gomock.Any(), "Home Depot").
			Return(entities.Vendor{VendorID: "VEND-001", VendorName: "Home Depot"}, nil)

		r := newRouter()
		r.POST("/v1/vendors", NewPartyHandler(uc).CreateVendor)

		w := performRequest(r, http.MethodPost, "/v1/vendors", `{"vendorName":"Home Depot"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list subcontractors storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartyUseCase(ctrl)
		uc.EXPECT().ListSubcontractors(gomock.Any()).
			Return(nil, &usecase.ExternalServiceError{Service: "storage", Err: errTest})

		r := newRouter()
		r.GET("/v1/subcontractors", NewPartyHandler(uc).ListSubcontractors)

		w := performRequest(r, http.MethodGet, "/v1/subcontractors", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("create subcontractor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPartyUseCase(ctrl)
		uc.EXPECT().CreateSubcontractor(gomock.Any(), usecase.CreateSubcontractorInput{SubName: "Sparks LLC", Phone: "555"}).
			Return(entities.Subcontractor{SubID: "Sub-001"}, nil)

		r := newRouter()
		r.POST("/v1/subcontractors", NewPartyHandler(uc).CreateSubcontractor)

		w := performRequest(r, http.MethodPost, "/v1/subcontractors", `{"subName":"Sparks LLC","phone":"555"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
