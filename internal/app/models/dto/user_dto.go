package dto

import "github.com/hackathon-manager/hackathon/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the self-registration payload. The password may be set
// later during activation.
type RegisterRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	Email              string `json:"email" binding:"required,email"`
	Telephone          string `json:"telephone" binding:"max=50"`
	Password           string `json:"password" binding:"omitempty,min=8"`
	IsPrivateEmail     bool   `json:"is_private_email"`
	IsPrivateTelephone bool   `json:"is_private_telephone"`
	AvatarURL          string `json:"avatar_url"`
}

// ActivateRequest redeems the emailed activation code
type ActivateRequest struct {
	Email          string `json:"email" binding:"required"`
	ActivationCode string `json:"activation_code" binding:"required"`
	Password       string `json:"password" binding:"omitempty,min=8"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	Name               *string      `json:"name" binding:"omitempty,min=1,max=100"`
	Email              *string      `json:"email" binding:"omitempty,email"`
	Telephone          *string      `json:"telephone" binding:"omitempty,max=50"`
	IsPrivateEmail     *bool        `json:"is_private_email"`
	IsPrivateTelephone *bool        `json:"is_private_telephone"`
	Password           *string      `json:"password" binding:"omitempty,min=8"`
	RoleID             *models.Role `json:"role_id" binding:"omitempty,role"`
	AvatarURL          *string      `json:"avatar_url"`
}
