package services

import (
	"context"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

// AuthService validates auth forms before handing them to the auth store.
type AuthService struct {
	auth *state.AuthStore
}

func NewAuthService(gw ports.UserGateway, sessions ports.SessionStore, current *domain.Session) *AuthService {
	return &AuthService{auth: state.NewAuthStore(gw, sessions, current)}
}

func (s *AuthService) State() state.AuthState {
	return s.auth.Snapshot()
}

func (s *AuthService) Login(ctx context.Context, form forms.LoginForm) (*domain.Session, error) {
	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	return s.auth.Login(ctx, form.Request())
}

func (s *AuthService) Register(ctx context.Context, form forms.RegisterForm) (*domain.Session, error) {
	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	return s.auth.Register(ctx, form.Request())
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.auth.Logout(ctx)
}

func (s *AuthService) Me(ctx context.Context) (*domain.User, error) {
	return s.auth.Profile(ctx)
}

func (s *AuthService) ForgotPassword(ctx context.Context, form forms.ForgotPasswordForm) error {
	if err := forms.Validate(form); err != nil {
		return err
	}

	return s.auth.ForgotPassword(ctx, form.Request())
}

func (s *AuthService) ResetPassword(ctx context.Context, form forms.ResetPasswordForm) error {
	if err := forms.Validate(form); err != nil {
		return err
	}

	return s.auth.ResetPassword(ctx, form.Request())
}

func (s *AuthService) ChangePassword(ctx context.Context, form forms.ChangePasswordForm) error {
	if err := forms.Validate(form); err != nil {
		return err
	}

	return s.auth.ChangePassword(ctx, form.Request())
}
