package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// UserController handles user profile operations
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetMe returns the caller's own record
// @Summary Get current user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 403 {string} string "Invalid Token"
// @Failure 404 {string} string "No user found"
// @Router /user/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	user, err := c.userService.GetMe(ctx.Request.Context(), middleware.ClaimsFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// ListUsers returns all users with private fields hidden
// @Summary List users
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 403 {string} string "No permission"
// @Router /user/list [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context(), middleware.ClaimsFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser returns one user
// @Summary Get user by ID
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {string} string "No user found"
// @Router /user/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	user, err := c.userService.GetUser(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update
// @Summary Update user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Missing fields"
// @Failure 403 {string} string "No permission"
// @Failure 404 {string} string "No user found"
// @Failure 409 {string} string "Already exists"
// @Router /user/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser removes a user and everything attached to them
// @Summary Delete user
// @Tags user
// @Produce plain
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {string} string "User deleted"
// @Failure 403 {string} string "No permission"
// @Failure 404 {string} string "No user found"
// @Router /user/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.userService.DeleteUser(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("userID", id).Msg("User deleted")
	ctx.String(http.StatusOK, "User deleted")
}

// UploadAvatar replaces the user's avatar image
// @Summary Upload avatar
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param avatar formData file true "Image file"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Invalid file"
// @Failure 403 {string} string "No permission"
// @Router /user/{id}/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	file, err := ctx.FormFile("avatar")
	if err != nil {
		ctx.String(http.StatusBadRequest, apperrors.MsgMissingFields)
		return
	}

	user, err := c.userService.UploadAvatar(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
