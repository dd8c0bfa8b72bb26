package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type AuthState struct {
	Status
	User          *domain.User `json:"user,omitempty"`
	Authenticated bool         `json:"authenticated"`
}

// AuthStore owns the session lifecycle: login and register create a session
// and persist it, logout invalidates it and clears the stored token.
type AuthStore struct {
	base
	gw       ports.UserGateway
	sessions ports.SessionStore
	session  *domain.Session
}

func NewAuthStore(gw ports.UserGateway, sessions ports.SessionStore, current *domain.Session) *AuthStore {
	return &AuthStore{gw: gw, sessions: sessions, session: current}
}

// RestoreSession rebuilds a session from the token persisted under id.
func RestoreSession(ctx context.Context, sessions ports.SessionStore, id string) (*domain.Session, error) {
	if id == "" {
		return nil, ports.ErrSessionNotFound
	}

	rec, err := sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if rec.Token == "" {
		return nil, ports.ErrSessionNotFound
	}

	return domain.NewSession(id, rec.User, rec.Token), nil
}

func (s *AuthStore) Snapshot() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := AuthState{Status: s.status()}
	if s.session.Valid() {
		user := s.session.User
		st.User = &user
		st.Authenticated = true
	}

	return st
}

func (s *AuthStore) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

func (s *AuthStore) Login(ctx context.Context, req ports.LoginRequest) (*domain.Session, error) {
	return s.authenticate(ctx, func(ctx context.Context) (*ports.AuthResponse, error) {
		return s.gw.Login(ctx, req)
	})
}

func (s *AuthStore) Register(ctx context.Context, req ports.RegisterRequest) (*domain.Session, error) {
	return s.authenticate(ctx, func(ctx context.Context) (*ports.AuthResponse, error) {
		return s.gw.Register(ctx, req)
	})
}

func (s *AuthStore) authenticate(ctx context.Context, call func(context.Context) (*ports.AuthResponse, error)) (*domain.Session, error) {
	return dispatchOrDiscard(ctx, &s.base, func(ctx context.Context) (*domain.Session, error) {
		resp, err := call(ctx)
		if err != nil {
			return nil, err
		}

		if resp.Token == "" {
			return nil, errors.New("backend returned an empty token")
		}

		session := domain.NewSession(uuid.NewString(), resp.User, resp.Token)
		if err := s.sessions.Save(ctx, session.ID, session.Record()); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}

		return session, nil
	}, func(session *domain.Session) {
		s.session.Invalidate()
		s.session = session
	}, func(session *domain.Session) {
		// Stored but never handed to the caller.
		session.Invalidate()
		_ = s.sessions.Delete(context.WithoutCancel(ctx), session.ID)
	})
}

// Logout always clears the local session, even when the backend call fails;
// the backend error is still reported.
func (s *AuthStore) Logout(ctx context.Context) error {
	current := s.Session()
	if current == nil {
		return nil
	}

	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		backendErr := s.gw.Logout(ctx)

		current.Invalidate()

		if err := s.sessions.Delete(context.WithoutCancel(ctx), current.ID); err != nil && !errors.Is(err, ports.ErrSessionNotFound) {
			return struct{}{}, errors.Join(backendErr, fmt.Errorf("failed to clear session: %w", err))
		}

		return struct{}{}, backendErr
	}, func(struct{}) {
		s.session = nil
	})

	return err
}

func (s *AuthStore) Profile(ctx context.Context) (*domain.User, error) {
	if !s.Session().Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.User, error) {
		return s.gw.Profile(ctx)
	}, nil)
}

func (s *AuthStore) ForgotPassword(ctx context.Context, req ports.ForgotPasswordRequest) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gw.ForgotPassword(ctx, req)
	}, nil)

	return err
}

func (s *AuthStore) ResetPassword(ctx context.Context, req ports.ResetPasswordRequest) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gw.ResetPassword(ctx, req)
	}, nil)

	return err
}

func (s *AuthStore) ChangePassword(ctx context.Context, req ports.ChangePasswordRequest) error {
	if !s.Session().Valid() {
		return domain.ErrNotAuthenticated
	}

	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gw.ChangePassword(ctx, req)
	}, nil)

	return err
}
