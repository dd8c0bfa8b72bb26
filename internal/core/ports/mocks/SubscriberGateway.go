package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type SubscriberGateway struct {
	mock.Mock
}

func (_m *SubscriberGateway) ListSubscribers(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.Subscriber], error) {
	ret := _m.Called(ctx, q)

	var r0 *domain.Page[domain.Subscriber]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.Subscriber])
	}

	return r0, ret.Error(1)
}

func (_m *SubscriberGateway) CreateSubscriber(ctx context.Context, in ports.SubscriberInput) (*domain.Subscriber, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.Subscriber
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Subscriber)
	}

	return r0, ret.Error(1)
}

func (_m *SubscriberGateway) UpdateSubscriber(ctx context.Context, id string, req ports.UpdateSubscriberRequest) (*domain.Subscriber, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.Subscriber
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Subscriber)
	}

	return r0, ret.Error(1)
}

func (_m *SubscriberGateway) DeleteSubscriber(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *SubscriberGateway) SubscriberStats(ctx context.Context) (*domain.SubscriberStats, error) {
	ret := _m.Called(ctx)

	var r0 *domain.SubscriberStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.SubscriberStats)
	}

	return r0, ret.Error(1)
}

func NewSubscriberGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *SubscriberGateway {
	m := &SubscriberGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
