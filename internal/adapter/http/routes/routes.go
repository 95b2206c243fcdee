package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"proposal_desk/internal/adapter/http/handlers"
	"proposal_desk/internal/adapter/persistence/repository"
	"proposal_desk/internal/config"
	"proposal_desk/internal/infrastructure/database"
	"proposal_desk/internal/infrastructure/exchangerate"
	"proposal_desk/internal/infrastructure/metrics"
	"proposal_desk/internal/infrastructure/payments"
	"proposal_desk/internal/infrastructure/scheduler"
	"proposal_desk/internal/usecase"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	ExchangeRate    *handlers.ExchangeRateHandler
	LineItem        *handlers.LineItemHandler
	Proposal        *handlers.ProposalHandler
	Customer        *handlers.CustomerHandler
	Dashboard       *handlers.DashboardHandler
	ProposalPayment *handlers.ProposalPaymentHandler
}

// Run wires dependencies, starts the scheduler and serves HTTP until SIGINT
// or SIGTERM.
func Run(cfg *config.Config, log zerolog.Logger) {
	ctx := context.Background()

	quoteMetrics := metrics.NewQuoteMetrics(prometheus.DefaultRegisterer)
	rates := exchangerate.NewTCMBClient(cfg.ExchangeRate.FeedURL, cfg.ExchangeRate.Timeout, quoteMetrics, log)

	ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB, log)
	h := buildHandlers(cfg, ddb, rates, quoteMetrics, log)

	sched := scheduler.New(log)
	probe := scheduler.NewExchangeRateProbeJob(rates, cfg.ExchangeRate.Timeout, log)
	if err := sched.AddJob(cfg.ExchangeRate.ProbeSchedule, probe); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.ExchangeRate.ProbeSchedule).Msg("Failed to register exchange rate probe")
	}
	sched.Start()
	defer sched.Stop()
	go func() {
		if err := sched.RunNow(probe); err != nil {
			log.Warn().Err(err).Str("job", probe.Name()).Msg("Startup exchange rate check failed")
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPServer.Port,
		Handler:           NewRouter(h, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to startup the application")
		}
	}()
	log.Info().Str("port", cfg.HTTPServer.Port).Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func buildHandlers(
	cfg *config.Config,
	ddb repository.DynamoAPI,
	rates *exchangerate.TCMBClient,
	quoteMetrics *metrics.QuoteMetrics,
	log zerolog.Logger,
) Handlers {
	tables := cfg.DynamoDB
	proposalRepo := repository.NewProposalDynamoRepository(ddb, tables.ProposalsTable, tables.LineItemsTable)
	customerRepo := repository.NewCustomerDynamoRepository(ddb, tables.CustomersTable)
	lineItemRepo := repository.NewLineItemDynamoRepository(ddb, tables.LineItemsTable, tables.ProposalsTable)
	paymentRepo := repository.NewProposalPaymentDynamoRepository(ddb, tables.PaymentsTable)

	// A nil gateway still satisfies the interface and reports itself as not configured.
	var gateway *payments.MercadoPagoGateway
	gw, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		gateway = gw
	}

	return Handlers{
		ExchangeRate: handlers.NewExchangeRateHandler(usecase.NewExchangeRateUseCase(rates)),
		LineItem:     handlers.NewLineItemHandler(usecase.NewLineItemUseCase(lineItemRepo, proposalRepo, rates, quoteMetrics, log)),
		Proposal:     handlers.NewProposalHandler(usecase.NewProposalUseCase(proposalRepo, customerRepo, lineItemRepo, quoteMetrics, log)),
		Customer:     handlers.NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo)),
		Dashboard:    handlers.NewDashboardHandler(usecase.NewDashboardUseCase(proposalRepo, customerRepo, log)),
		ProposalPayment: handlers.NewProposalPaymentHandler(
			usecase.NewProposalPaymentUseCase(paymentRepo, proposalRepo, gateway, log),
			gateway.MockMode(),
			log,
		),
	}
}

// NewRouter mounts the API, swagger and Prometheus endpoints.
func NewRouter(h Handlers, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addExchangeRateRoutes(v1, h.ExchangeRate)
	addLineItemRoutes(v1, h.LineItem)
	addProposalRoutes(v1, h.Proposal, h.LineItem)
	addCustomerRoutes(v1, h.Customer)
	addDashboardRoutes(v1, h.Dashboard)
	addPaymentRoutes(v1, h.ProposalPayment)

	return router
}

func setMiddlewares(router *gin.Engine, log zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
