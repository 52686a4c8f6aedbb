package handlers

import (
	"net/http"

	request "akc_operations/internal/adapter/http/dto/request"
	response "akc_operations/internal/adapter/http/dto/response"
	"akc_operations/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	customer, err := h.usecase.CreateCustomer(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(customer))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(nonNil(customers)))
}

func (h *CustomerHandler) GetCustomerDetails(c *gin.Context) {
	details, err := h.usecase.GetCustomerDetails(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCustomerDetails(details)))
}

func (h *CustomerHandler) UpdateCustomerStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	change, err := h.usecase.UpdateCustomerStatus(c.Request.Context(), c.Param("customer_id"), payload.Status)
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCustomerStatusChange(change)))
}
