package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inbucks/inbucks/internal/api/middleware"
	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/response"
	"github.com/inbucks/inbucks/internal/api/service"
	"github.com/inbucks/inbucks/internal/validator"
)

// TransactionController handles transaction-related HTTP requests.
type TransactionController struct {
	txService service.TransactionService
}

// NewTransactionController creates a new TransactionController.
func NewTransactionController(txService service.TransactionService) *TransactionController {
	return &TransactionController{txService: txService}
}

// List returns the authenticated user's transactions, as either party.
func (tc *TransactionController) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	txs, err := tc.txService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list transactions", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.SuccessResponse(c, gin.H{"transactions": txs})
}

// Create records a pending transaction for the referenced offer, with the
// authenticated user as buyer.
func (tc *TransactionController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrorResponse(c, validator.FieldErrors(err))
		return
	}

	tx, err := tc.txService.Create(c.Request.Context(), user.ID, req.OfferID)
	if err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, "offer not found")
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to create transaction", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.CreatedResponse(c, gin.H{"transaction": tx})
}
