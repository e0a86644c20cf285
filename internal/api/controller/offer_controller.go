package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inbucks/inbucks/internal/api/middleware"
	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/response"
	"github.com/inbucks/inbucks/internal/api/service"
	"github.com/inbucks/inbucks/internal/validator"
)

// OfferController handles offer-related HTTP requests.
type OfferController struct {
	offerService service.OfferService
}

// NewOfferController creates a new OfferController.
func NewOfferController(offerService service.OfferService) *OfferController {
	return &OfferController{offerService: offerService}
}

// List returns all published offers. Public.
func (oc *OfferController) List(c *gin.Context) {
	offers, err := oc.offerService.List(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list offers", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.SuccessResponse(c, gin.H{"offers": offers})
}

// Get returns a single offer by id. Public.
func (oc *OfferController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "invalid offer id")
		return
	}

	offer, err := oc.offerService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, "offer not found")
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to get offer", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.SuccessResponse(c, gin.H{"offer": offer})
}

// Create publishes a new offer owned by the authenticated user.
func (oc *OfferController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrorResponse(c, validator.FieldErrors(err))
		return
	}

	offer, err := oc.offerService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to create offer", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.CreatedResponse(c, gin.H{"offer": offer})
}
