package routes

import (
	"akc_operations/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathEstimates = "/estimates"
	PathCustomers = "/customers"
)

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.CreateProject)
		projects.GET("/active", h.GetActiveProjects)
		projects.GET("/intents", h.ListIntents)
		projects.POST("/intents/:intent_id/cleanup", h.CleanupProjectCreation)
		projects.GET("/:project_id", h.GetProject)
		projects.PATCH("/:project_id/status", h.UpdateProjectStatus)
		projects.GET("/:project_id/modules", h.GetModuleVisibility)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.CreateEstimate)
		estimates.GET("/:estimate_id", h.GetEstimate)
		estimates.PATCH("/:estimate_id/status", h.UpdateEstimateStatus)
		estimates.GET("/:estimate_id/template", h.LoadPreviousEstimateVersion)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:customer_id", h.GetCustomerDetails)
		customers.PATCH("/:customer_id/status", h.UpdateCustomerStatus)
	}
}
