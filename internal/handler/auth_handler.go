package handler

import (
	"net/http"

	"lsbets/config"
	"lsbets/internal/auth"
	"lsbets/internal/domain"
	"lsbets/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	cfg      *config.Config
	provider *auth.Provider
	users    *repository.UserRepository
	log      *zap.Logger
}

func NewAuthHandler(cfg *config.Config, provider *auth.Provider, users *repository.UserRepository, log *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, provider: provider, users: users, log: log}
}

// Login hands the client the UCP authorization URL to start the OAuth flow.
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.provider.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "UCP OAuth not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth_url": h.provider.AuthURL()})
}

type callbackRequest struct {
	Code        string `json:"code" binding:"required"`
	CharacterID uint   `json:"character_id" binding:"required"`
}

// Callback exchanges the OAuth code, verifies the chosen character belongs
// to the account, and mints the session token every ledger operation will
// trust.
func (h *AuthHandler) Callback(c *gin.Context) {
	if !h.provider.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "UCP OAuth not configured"})
		return
	}
	var req callbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code or character_id"})
		return
	}
	ctx := c.Request.Context()
	tok, err := h.provider.Exchange(ctx, req.Code)
	if err != nil {
		h.log.Warn("oauth exchange failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "code exchange failed"})
		return
	}
	account, err := h.provider.FetchAccount(ctx, tok.AccessToken)
	if err != nil {
		h.log.Warn("ucp account fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch account"})
		return
	}
	if !account.HasCharacter(req.CharacterID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "character does not belong to this account"})
		return
	}
	token, err := auth.GenerateToken(&h.cfg.JWT, account.ID, req.CharacterID, account.Username, domain.RolePlayer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         account.ID,
			"username":   account.Username,
			"characters": account.Characters,
		},
	})
}

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates the seeded adjudication account with local
// credentials.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing credentials"})
		return
	}
	user, err := h.users.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if user.Role != domain.RoleAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	token, err := auth.GenerateToken(&h.cfg.JWT, user.ID, 0, user.Username, domain.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
