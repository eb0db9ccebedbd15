package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/auth"
	"github.com/royalbikes/showroom-backend/internal/domain/models"
	"github.com/royalbikes/showroom-backend/internal/repository/mongodb"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	auth   *auth.Service
	users  mongodb.UserStore
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthHandler constructs the auth HTTP adapter.
func NewAuthHandler(authSvc *auth.Service, users mongodb.UserStore, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{auth: authSvc, users: users, logger: logger, now: time.Now}
}

// Login checks credentials and issues an access token. A missing account and
// a wrong password are indistinguishable on the wire.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.users.FindUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	if !h.auth.CheckPassword(req.Password, user.PasswordHash) {
		h.logger.Warn("failed login attempt", zap.String("email", user.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.auth.GenerateToken(user.ID.Hex(), user.Name, user.UserType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User: models.UserInfo{
			UserID:   user.ID.Hex(),
			UserName: user.Name,
			UserType: user.UserType,
		},
	})
}

// Register creates a new operator account with a bcrypt-hashed password.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	if err := h.auth.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.users.FindUserByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	} else if !errors.Is(err, mongodb.ErrNotFound) {
		respondError(c, h.logger, err)
		return
	}

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	created, err := h.users.InsertUser(c.Request.Context(), models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		UserType:     models.UserTypeStaff,
		CreatedAt:    h.now(),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("user registered", zap.String("email", created.Email))
	c.JSON(http.StatusCreated, created)
}

// Logout acknowledges the client discarding its token. Tokens are stateless
// so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
