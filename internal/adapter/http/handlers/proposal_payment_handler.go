package handlers

import (
	"encoding/json"
	"net/http"
	request "proposal_desk/internal/adapter/http/dto/request"
	response "proposal_desk/internal/adapter/http/dto/response"
	"proposal_desk/internal/usecase"
	"proposal_desk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProposalPaymentHandler collects deposits for approved proposals.
type ProposalPaymentHandler struct {
	usecase  usecase.IProposalPaymentUseCase
	mockMode bool
	log      zerolog.Logger
}

// NewProposalPaymentHandler builds the handler. In mock mode an unreadable
// body degrades to an empty payload instead of a 400.
func NewProposalPaymentHandler(uc usecase.IProposalPaymentUseCase, mockMode bool, log zerolog.Logger) *ProposalPaymentHandler {
	return &ProposalPaymentHandler{
		usecase:  uc,
		mockMode: mockMode,
		log:      log.With().Str("component", "payment_handler").Logger(),
	}
}

// CreateDeposit godoc
// @Summary      Collect a deposit for an approved proposal
// @Description  The amount is always the proposal total. The body is forwarded to Mercado Pago, bare or wrapped in payment_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        proposal_id  path      string                                true   "Proposal ID"
// @Param        body         body      request.ProposalPaymentCreateRequest  false  "Provider payload"
// @Success      200          {object}  response.ProposalPaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /v1/payments/{proposal_id} [post]
func (h *ProposalPaymentHandler) CreateDeposit(c *gin.Context) {
	proposalID := c.Param("proposal_id")
	log := h.log.With().Str("proposal_id", proposalID).Logger()

	payload, err := readPaymentPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn().Err(err).Msg("invalid payment payload")
			writeError(c, errInvalidRequest)
			return
		}
		log.Debug().Err(err).Msg("invalid payload in mock mode, using empty payload")
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), proposalID, payload)
	if err != nil {
		log.Error().Err(err).Msg("create deposit failed")
		writeError(c, mapDomainError(err))
		return
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("deposit created")

	c.JSON(http.StatusOK, response.FromProposalPayment(created))
}

// GetLatestByProposalID godoc
// @Summary      Latest deposit of a proposal
// @Tags         payments
// @Produce      json
// @Param        proposal_id  path      string  true  "Proposal ID"
// @Success      200          {object}  response.ProposalPaymentResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /v1/payments/{proposal_id} [get]
func (h *ProposalPaymentHandler) GetLatestByProposalID(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	payments, err := h.usecase.ListByProposalID(c.Request.Context(), proposalID)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromProposalPayment(latest))
}

// GetByID godoc
// @Summary      Get a deposit by id
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.ProposalPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/payments/by-id/{id} [get]
func (h *ProposalPaymentHandler) GetByID(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalPayment(payment))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ResolvePaymentPayload(raw)
}
