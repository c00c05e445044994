// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/rs/zerolog"
)

// AuthController handles login, registration and activation
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns an access token
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {string} string "Missing fields"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 404 {string} string "No user found"
// @Router /user/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("User logged in")
	ctx.JSON(http.StatusOK, resp)
}

// Register handles self-registration
// @Summary Register a new user
// @Description Creates a NEW user and mails an activation code
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} models.User
// @Failure 400 {string} string "Missing fields"
// @Failure 409 {string} string "Already exists"
// @Router /user [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", user.ID).Msg("User registered")
	ctx.JSON(http.StatusCreated, user)
}

// Activate redeems an activation code
// @Summary Activate an account
// @Description Verifies the activation code and promotes the user to USER or GUEST depending on the email domain
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.ActivateRequest true "Activation data"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Invalid activation code"
// @Failure 404 {string} string "No user found"
// @Router /user/activate [post]
func (c *AuthController) Activate(ctx *gin.Context) {
	var req dto.ActivateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Activate(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", user.ID).Str("role", user.RoleID.String()).Msg("User activated")
	ctx.JSON(http.StatusOK, user)
}
