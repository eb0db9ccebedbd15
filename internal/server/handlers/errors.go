package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
	"github.com/royalbikes/showroom-backend/internal/service/catalog"
)

// respondError maps service errors onto the wire contract. Validation
// failures carry the offending field; everything unexpected collapses to a
// 500 with the detail kept in the log, not the response.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
	case errors.Is(err, mongodb.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, catalog.ErrDuplicateModel):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
