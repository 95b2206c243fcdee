package handlers

import (
	"context"
	"net/http"
	request "proposal_desk/internal/adapter/http/dto/request"
	response "proposal_desk/internal/adapter/http/dto/response"
	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles proposal versions and their lifecycle.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a proposal (version 1, draft)
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateProposalRequest  true  "Proposal"
// @Success      201   {object}  response.ProposalResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /v1/proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, payload.Title)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// GetByID godoc
// @Summary      Get a proposal version
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/proposals/{id} [get]
func (h *ProposalHandler) GetByID(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// Revise godoc
// @Summary      Create the next version of a proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      201  {object}  response.ProposalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/proposals/{id}/revisions [post]
func (h *ProposalHandler) Revise(c *gin.Context) {
	proposal, err := h.usecase.Revise(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// ListLineage godoc
// @Summary      List every version sharing a root proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Root proposal ID"
// @Success      200  {array}   response.ProposalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/proposals/{id}/lineage [get]
func (h *ProposalHandler) ListLineage(c *gin.Context) {
	versions, err := h.usecase.ListLineage(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(versions))
}

// Send godoc
// @Summary      Mark a draft proposal as sent
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/proposals/{id}/send [patch]
func (h *ProposalHandler) Send(c *gin.Context) {
	h.patchStatus(c, h.usecase.Send)
}

// Approve godoc
// @Summary      Approve a sent proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/proposals/{id}/approve [patch]
func (h *ProposalHandler) Approve(c *gin.Context) {
	h.patchStatus(c, h.usecase.Approve)
}

// Reject godoc
// @Summary      Reject a sent proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal ID"
// @Success      200  {object}  response.ProposalResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/proposals/{id}/reject [patch]
func (h *ProposalHandler) Reject(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reject)
}

func (h *ProposalHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, proposalID string) (entities.Proposal, error),
) {
	proposal, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}
