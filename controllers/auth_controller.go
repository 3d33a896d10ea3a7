package controllers

import (
	"context"
	"net/http"

	"techmart-backend/common/logger"
	"techmart-backend/services/auth"
	"techmart-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// AuthService is the credential surface the controller needs.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
	Register(ctx context.Context, name, email, password, role string) error
	RefreshTokens(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
}

type AuthController struct {
	service  AuthService
	sessions *store.SessionStore
}

func NewAuthController(service AuthService, sessions *store.SessionStore) *AuthController {
	return &AuthController{service: service, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// sessionID returns the caller's session cookie, minting one when
// absent.
func (ac *AuthController) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, 86400*30, "/", "", false, true)
	return sid
}

// Login authenticates and establishes the session. On any failure the
// session store is left untouched and the error surfaces to the UI.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	result, err := ac.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sid := ac.sessionID(c)
	session, err := ac.sessions.SetAuth(c.Request.Context(), sid, result.User, result.AccessToken, result.RefreshToken)
	if err != nil {
		logger.Error(c, "failed to persist session", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Logged in successfully",
		"user":          session.User,
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
	})
}

// Register creates a new customer account.
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if err := ac.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, ""); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}

// Refresh rotates the token pair. The refresh token comes from the
// body, falling back to the stored session.
func (ac *AuthController) Refresh(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)

	sid := ac.sessionID(c)
	refreshToken := req.RefreshToken
	if refreshToken == "" {
		session, err := ac.sessions.Get(c.Request.Context(), sid)
		if err == nil {
			refreshToken = session.RefreshToken
		}
	}
	if refreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
		return
	}

	pair, err := ac.service.RefreshTokens(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	if _, err := ac.sessions.UpdateTokens(c.Request.Context(), sid, pair.AccessToken, pair.RefreshToken); err != nil {
		logger.Error(c, "failed to update session tokens", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Logout clears the session atomically; nothing survives it.
func (ac *AuthController) Logout(c *gin.Context) {
	sid := ac.sessionID(c)
	if err := ac.sessions.Logout(c.Request.Context(), sid); err != nil {
		logger.Error(c, "failed to clear session", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession reports the session's derived predicates for the UI.
func (ac *AuthController) GetSession(c *gin.Context) {
	sid := ac.sessionID(c)
	session, err := ac.sessions.Get(c.Request.Context(), sid)
	if err != nil {
		logger.Error(c, "failed to load session", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": session.IsAuthenticated(),
		"admin":         session.IsAdmin(),
		"user":          session.User,
	})
}
