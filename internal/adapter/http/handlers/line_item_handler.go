package handlers

import (
	"net/http"
	request "proposal_desk/internal/adapter/http/dto/request"
	response "proposal_desk/internal/adapter/http/dto/response"
	"proposal_desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

// Preview godoc
// @Summary      Price a line item without saving it
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        body  body      request.LineItemRequest  true  "Line item"
// @Success      200   {object}  response.LineItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /v1/line-items/preview [post]
func (h *LineItemHandler) Preview(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	item, err := h.usecase.Preview(c.Request.Context(), payload.ToCommand(""))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLineItem(item))
}

// AddToProposal godoc
// @Summary      Price and attach a line item to a draft proposal
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Proposal ID"
// @Param        body  body      request.LineItemRequest  true  "Line item"
// @Success      201   {object}  response.LineItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /v1/proposals/{id}/line-items [post]
func (h *LineItemHandler) AddToProposal(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	item, err := h.usecase.PriceLineItem(c.Request.Context(), payload.ToCommand(c.Param("id")))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

// ListByProposal godoc
// @Summary      List the line items of a proposal version
// @Tags         line-items
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {array}   response.LineItemResponse
// @Router       /v1/proposals/{id}/line-items [get]
func (h *LineItemHandler) ListByProposal(c *gin.Context) {
	items, err := h.usecase.ListByProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(items))
}
