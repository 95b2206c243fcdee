package routes

import (
	"proposal_desk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathExchangeRates = "/exchange-rates"
	PathLineItems     = "/line-items"
	PathProposals     = "/proposals"
	PathCustomers     = "/customers"
	PathDashboard     = "/dashboard"
	PathPayments      = "/payments"
)

func addExchangeRateRoutes(rg *gin.RouterGroup, h *handlers.ExchangeRateHandler) {
	rg.GET(PathExchangeRates, h.GetRates)
}

func addLineItemRoutes(rg *gin.RouterGroup, h *handlers.LineItemHandler) {
	lineItems := rg.Group(PathLineItems)
	{
		lineItems.POST("/preview", h.Preview)
	}
}

func addProposalRoutes(rg *gin.RouterGroup, h *handlers.ProposalHandler, lineItems *handlers.LineItemHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", h.Create)
		proposals.GET("/:id", h.GetByID)
		proposals.GET("/:id/lineage", h.ListLineage)
		proposals.POST("/:id/revisions", h.Revise)
		proposals.PATCH("/:id/send", h.Send)
		proposals.PATCH("/:id/approve", h.Approve)
		proposals.PATCH("/:id/reject", h.Reject)

		proposals.POST("/:id/line-items", lineItems.AddToProposal)
		proposals.GET("/:id/line-items", lineItems.ListByProposal)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.GetByID)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/metrics", h.Metrics)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.ProposalPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:proposal_id", h.CreateDeposit)
		payments.GET("/:proposal_id", h.GetLatestByProposalID)
		payments.GET("/by-id/:id", h.GetByID)
	}
}
