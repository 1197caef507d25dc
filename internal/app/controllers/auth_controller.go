package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/services"
	"github.com/otabek/juniorhub/internal/middleware"
)

// AuthController serves the admin login endpoint.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a staff account and returns a bearer token.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, token)
}
