package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type ReservationGateway struct {
	mock.Mock
}

func (_m *ReservationGateway) ListReservations(ctx context.Context, q ports.ReservationQuery) (*domain.Page[domain.Booking], error) {
	ret := _m.Called(ctx, q)

	var r0 *domain.Page[domain.Booking]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.Booking])
	}

	return r0, ret.Error(1)
}

func (_m *ReservationGateway) MyReservations(ctx context.Context) ([]domain.Booking, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}

	return r0, ret.Error(1)
}

func (_m *ReservationGateway) GetReservation(ctx context.Context, id string) (*domain.Booking, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}

	return r0, ret.Error(1)
}

func (_m *ReservationGateway) CreateReservation(ctx context.Context, req ports.CreateReservationRequest) (*domain.Booking, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}

	return r0, ret.Error(1)
}

func (_m *ReservationGateway) UpdateReservation(ctx context.Context, id string, req ports.UpdateReservationRequest) (*domain.Booking, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}

	return r0, ret.Error(1)
}

func (_m *ReservationGateway) ConfirmReservation(ctx context.Context, id string) (*domain.Booking, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}

	return r0, ret.Error(1)
}

func (_m *ReservationGateway) CancelReservation(ctx context.Context, id string, req ports.CancelReservationRequest) (*domain.Booking, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}

	return r0, ret.Error(1)
}

func (_m *ReservationGateway) DeleteReservation(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *ReservationGateway) ReservationStats(ctx context.Context) (*domain.BookingStats, error) {
	ret := _m.Called(ctx)

	var r0 *domain.BookingStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BookingStats)
	}

	return r0, ret.Error(1)
}

func NewReservationGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReservationGateway {
	m := &ReservationGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
