package handlers

import (
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account and returns a token pair.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req validators.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, tokens, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "User")
		return
	}

	utils.CreatedResponse(c, "Registration successful", gin.H{
		"user":   user.PublicProfile(),
		"tokens": tokens,
	})
}

// Login authenticates by email and password.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req validators.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "Login successful", gin.H{
		"user":   user.PublicProfile(),
		"tokens": tokens,
	})
}

// Profile returns the authenticated user's account.
// GET /api/v1/auth/me
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "User")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved", user.PublicProfile())
}
