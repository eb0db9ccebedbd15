package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/service/quotation"
)

// BookedHandler serves the booked vehicle endpoints.
type BookedHandler struct {
	svc    *quotation.Service
	logger *zap.Logger
}

// NewBookedHandler constructs the booked vehicles HTTP adapter.
func NewBookedHandler(svc *quotation.Service, logger *zap.Logger) *BookedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookedHandler{svc: svc, logger: logger}
}

// List returns booked vehicle records, optionally filtered by ?search=.
func (h *BookedHandler) List(c *gin.Context) {
	booked, err := h.svc.ListBookings(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookedVehicles": booked})
}

// Create stores a booked vehicle record directly.
func (h *BookedHandler) Create(c *gin.Context) {
	var booking models.BookedVehicle
	if err := c.ShouldBindJSON(&booking); err != nil {
		h.logger.Warn("invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Delete removes a booked vehicle record.
func (h *BookedHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
