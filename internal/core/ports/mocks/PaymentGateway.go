package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type PaymentGateway struct {
	mock.Mock
}

func (_m *PaymentGateway) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *PaymentGateway) PaymentForReservation(ctx context.Context, bookingID string) (*domain.Payment, error) {
	ret := _m.Called(ctx, bookingID)

	var r0 *domain.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *PaymentGateway) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Payment)
	}

	return r0, ret.Error(1)
}

func NewPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
