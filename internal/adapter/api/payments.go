package api

import (
	"context"
	"net/http"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

func (c *Client) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	var p domain.Payment
	if err := c.do(ctx, http.MethodPost, "/pagos", nil, req, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) PaymentForReservation(ctx context.Context, bookingID string) (*domain.Payment, error) {
	var p domain.Payment
	if err := c.do(ctx, http.MethodGet, "/pagos/reserva/"+escape(bookingID), nil, nil, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var page domain.Page[domain.Payment]
	if err := c.do(ctx, http.MethodGet, "/pagos", nil, nil, &page); err != nil {
		return nil, err
	}

	return page.Data, nil
}
