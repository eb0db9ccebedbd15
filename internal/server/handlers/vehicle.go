package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/service/catalog"
)

// VehicleHandler serves the vehicle catalog endpoints.
type VehicleHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewVehicleHandler constructs the catalog HTTP adapter.
func NewVehicleHandler(svc *catalog.Service, logger *zap.Logger) *VehicleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VehicleHandler{svc: svc, logger: logger}
}

// List returns every catalog entry.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// Create adds a catalog entry.
func (h *VehicleHandler) Create(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		h.logger.Warn("invalid vehicle payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.Add(c.Request.Context(), vehicle)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Delete removes a catalog entry.
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
