package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/travel_agency/internal/core/domain"
)

type SessionStore struct {
	mock.Mock
}

func (_m *SessionStore) Save(ctx context.Context, sessionID string, rec domain.SessionRecord) error {
	ret := _m.Called(ctx, sessionID, rec)

	return ret.Error(0)
}

func (_m *SessionStore) Load(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 *domain.SessionRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.SessionRecord)
	}

	return r0, ret.Error(1)
}

func (_m *SessionStore) Delete(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)

	return ret.Error(0)
}

func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
