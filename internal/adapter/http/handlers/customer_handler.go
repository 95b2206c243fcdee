package handlers

import (
	"net/http"
	request "proposal_desk/internal/adapter/http/dto/request"
	response "proposal_desk/internal/adapter/http/dto/response"
	"proposal_desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// Create godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCustomerRequest  true  "Customer"
// @Success      201   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /v1/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Email, payload.TaxNumber)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// GetByID godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  response.CustomerResponse
// @Router       /v1/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}
