package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

type PingResponse struct {
	Message string `json:"message"`
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}

// ping godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  routes.PingResponse
// @Router       /v1/ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
