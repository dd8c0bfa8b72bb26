package forms

import (
	"strings"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type LoginForm struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

func (f LoginForm) Request() ports.LoginRequest {
	return ports.LoginRequest{Username: strings.TrimSpace(f.Username), Password: f.Password}
}

type RegisterForm struct {
	Username        string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (f RegisterForm) Request() ports.RegisterRequest {
	return ports.RegisterRequest{
		Username: strings.TrimSpace(f.Username),
		Email:    strings.ToLower(strings.TrimSpace(f.Email)),
		Password: f.Password,
	}
}

type ForgotPasswordForm struct {
	Email string `json:"email" validate:"required,email"`
}

func (f ForgotPasswordForm) Request() ports.ForgotPasswordRequest {
	return ports.ForgotPasswordRequest{Email: strings.ToLower(strings.TrimSpace(f.Email))}
}

type ResetPasswordForm struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (f ResetPasswordForm) Request() ports.ResetPasswordRequest {
	return ports.ResetPasswordRequest{Token: f.Token, Password: f.Password}
}

type ChangePasswordForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (f ChangePasswordForm) Request() ports.ChangePasswordRequest {
	return ports.ChangePasswordRequest{CurrentPassword: f.CurrentPassword, NewPassword: f.NewPassword}
}

// UserForm is the admin edit of an account; empty fields are left untouched.
type UserForm struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30,alphanum"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"rol" validate:"omitempty,oneof=admin cliente"`
}

func (f UserForm) Request() ports.UpdateUserRequest {
	var req ports.UpdateUserRequest

	if username := strings.TrimSpace(f.Username); username != "" {
		req.Username = &username
	}

	if email := strings.ToLower(strings.TrimSpace(f.Email)); email != "" {
		req.Email = &email
	}

	if f.Role != "" {
		role := domain.Role(f.Role)
		req.Role = &role
	}

	return req
}
