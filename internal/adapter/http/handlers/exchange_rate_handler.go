package handlers

import (
	"net/http"
	response "proposal_desk/internal/adapter/http/dto/response"
	"proposal_desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExchangeRateHandler struct {
	usecase usecase.IExchangeRateUseCase
}

func NewExchangeRateHandler(uc usecase.IExchangeRateUseCase) *ExchangeRateHandler {
	return &ExchangeRateHandler{usecase: uc}
}

// GetRates godoc
// @Summary      Today's selling rates
// @Description  USD and EUR selling rates in TRY. Falls back to fixed rates when the feed is unavailable.
// @Tags         exchange-rates
// @Produce      json
// @Success      200  {object}  response.ExchangeRatesResponse
// @Router       /v1/exchange-rates [get]
func (h *ExchangeRateHandler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromExchangeRates(h.usecase.CurrentRates(c.Request.Context())))
}
