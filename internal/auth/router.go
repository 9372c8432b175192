package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthRouter exposes registration and login endpoints.
type AuthRouter struct {
	as *AuthService
}

// NewAuthRouter creates a new AuthRouter instance
func NewAuthRouter(as *AuthService) *AuthRouter {
	return &AuthRouter{as: as}
}

// Register mounts the auth routes on the given group.
func (ar *AuthRouter) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", ar.handleRegister)
	rg.POST("/auth/login", ar.handleLogin)
	rg.GET("/auth/me", RequireAuth(), ar.handleMe)
}

// handleRegister handles POST /api/auth/register requests
func (ar *AuthRouter) handleRegister(c *gin.Context) {
	var req RegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	user, err := ar.as.Register(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// handleLogin handles POST /api/auth/login requests
func (ar *AuthRouter) handleLogin(c *gin.Context) {
	var req LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	token, err := ar.as.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// handleMe handles GET /api/auth/me requests
func (ar *AuthRouter) handleMe(c *gin.Context) {
	user, err := ar.as.GetUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
