package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
)

// PermissionHandler serves the read-only module permission matrix.
type PermissionHandler struct {
	store  mongodb.PermissionStore
	logger *zap.Logger
}

// NewPermissionHandler constructs the permissions HTTP adapter.
func NewPermissionHandler(store mongodb.PermissionStore, logger *zap.Logger) *PermissionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PermissionHandler{store: store, logger: logger}
}

// List returns every permission row.
func (h *PermissionHandler) List(c *gin.Context) {
	permissions, err := h.store.ListPermissions(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}
