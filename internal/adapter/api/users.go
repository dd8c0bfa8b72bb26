package api

import (
	"context"
	"net/http"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

func (c *Client) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResponse, error) {
	var resp ports.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/usuarios/login", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResponse, error) {
	var resp ports.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/usuarios/register", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Logout invalidates the bound session once the backend accepts the call.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/usuarios/logout", nil, nil, nil); err != nil {
		return err
	}

	c.session.Invalidate()

	return nil
}

func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/usuarios/perfil", nil, nil, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (c *Client) ListUsers(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.User], error) {
	var page domain.Page[domain.User]
	if err := c.do(ctx, http.MethodGet, "/usuarios", listValues(q), nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/usuarios/"+escape(id), nil, nil, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req ports.UpdateUserRequest) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodPut, "/usuarios/"+escape(id), nil, req, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/usuarios/"+escape(id), nil, nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, req ports.ForgotPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/usuarios/forgot-password", nil, req, nil)
}

func (c *Client) ResetPassword(ctx context.Context, req ports.ResetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/usuarios/reset-password", nil, req, nil)
}

func (c *Client) ChangePassword(ctx context.Context, req ports.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPut, "/usuarios/change-password", nil, req, nil)
}
