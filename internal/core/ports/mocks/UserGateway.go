package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type UserGateway struct {
	mock.Mock
}

func (_m *UserGateway) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *ports.AuthResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ports.AuthResponse)
	}

	return r0, ret.Error(1)
}

func (_m *UserGateway) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *ports.AuthResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ports.AuthResponse)
	}

	return r0, ret.Error(1)
}

func (_m *UserGateway) Logout(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

func (_m *UserGateway) Profile(ctx context.Context) (*domain.User, error) {
	ret := _m.Called(ctx)

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserGateway) ListUsers(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.User], error) {
	ret := _m.Called(ctx, q)

	var r0 *domain.Page[domain.User]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.User])
	}

	return r0, ret.Error(1)
}

func (_m *UserGateway) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserGateway) UpdateUser(ctx context.Context, id string, req ports.UpdateUserRequest) (*domain.User, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserGateway) DeleteUser(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *UserGateway) ForgotPassword(ctx context.Context, req ports.ForgotPasswordRequest) error {
	ret := _m.Called(ctx, req)

	return ret.Error(0)
}

func (_m *UserGateway) ResetPassword(ctx context.Context, req ports.ResetPasswordRequest) error {
	ret := _m.Called(ctx, req)

	return ret.Error(0)
}

func (_m *UserGateway) ChangePassword(ctx context.Context, req ports.ChangePasswordRequest) error {
	ret := _m.Called(ctx, req)

	return ret.Error(0)
}

func NewUserGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserGateway {
	m := &UserGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
