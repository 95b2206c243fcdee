package handlers

import (
	"net/http"
	response "proposal_desk/internal/adapter/http/dto/response"
	"proposal_desk/internal/usecase"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	now     func() time.Time
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc, now: time.Now}
}

// Metrics godoc
// @Summary      Dashboard metrics
// @Description  Current and previous calendar month figures with change indicators.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardMetricsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /v1/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	report, err := h.usecase.Metrics(c.Request.Context(), h.now())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardReport(report))
}
