package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/service/quotation"
)

// BillingHandler serves the quotation lifecycle endpoints.
type BillingHandler struct {
	svc    *quotation.Service
	logger *zap.Logger
}

// NewBillingHandler constructs the billing HTTP adapter.
func NewBillingHandler(svc *quotation.Service, logger *zap.Logger) *BillingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingHandler{svc: svc, logger: logger}
}

// List returns stored quotations, optionally filtered by ?search=.
func (h *BillingHandler) List(c *gin.Context) {
	bills, err := h.svc.ListQuotations(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// Create validates, prices and stores a new quotation.
func (h *BillingHandler) Create(c *gin.Context) {
	var req models.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quotation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.CreateQuotation(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces a quotation wholesale, repricing it server-side.
func (h *BillingHandler) Update(c *gin.Context) {
	var req models.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quotation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.UpdateQuotation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a quotation.
func (h *BillingHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteQuotation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Book promotes a quotation into a booked vehicle record in one server-side
// move.
func (h *BillingHandler) Book(c *gin.Context) {
	booked, err := h.svc.BookQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, booked)
}
