package handlers

import (
	"errors"
	"net/http"
	"proposal_desk/internal/usecase"
	"proposal_desk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDomainError translates use case sentinels into API errors. Every handler
// shares it so the same sentinel always yields the same code.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidProposalTitle):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_TITLE", "Proposal title is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_NAME", "Customer name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerEmail):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_EMAIL", "Customer email is invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedCurrency):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CURRENCY", "Currency must be TRY, USD or EUR", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "A non-negative list or base price is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRate):
		return pkg.NewDomainErrorSimple("INVALID_RATE", "Discount, margin or VAT rate out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Proposal total must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotEditable):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_EDITABLE", "Only draft proposals accept line items", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Proposal status does not allow this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateVersion):
		return pkg.NewDomainErrorSimple("DUPLICATE_PROPOSAL_VERSION", "Proposal version already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrRevisionTooLarge):
		return pkg.NewDomainErrorSimple("REVISION_TOO_LARGE", "Proposal has too many line items to revise", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProposalNotApproved):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_APPROVED", "Proposal not approved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
