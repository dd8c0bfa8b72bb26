package api

import (
	"context"
	"net/http"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

func (c *Client) ListReservations(ctx context.Context, q ports.ReservationQuery) (*domain.Page[domain.Booking], error) {
	v := listValues(q.ListQuery)
	if q.Status != "" {
		v.Set("estado", string(q.Status))
	}

	if q.UserID != "" {
		v.Set("usuarioId", q.UserID)
	}

	var page domain.Page[domain.Booking]
	if err := c.do(ctx, http.MethodGet, "/reservas", v, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) MyReservations(ctx context.Context) ([]domain.Booking, error) {
	var page domain.Page[domain.Booking]
	if err := c.do(ctx, http.MethodGet, "/reservas/mis-reservas", nil, nil, &page); err != nil {
		return nil, err
	}

	return page.Data, nil
}

func (c *Client) GetReservation(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.do(ctx, http.MethodGet, "/reservas/"+escape(id), nil, nil, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (c *Client) CreateReservation(ctx context.Context, req ports.CreateReservationRequest) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.do(ctx, http.MethodPost, "/reservas", nil, req, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (c *Client) UpdateReservation(ctx context.Context, id string, req ports.UpdateReservationRequest) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.do(ctx, http.MethodPut, "/reservas/"+escape(id), nil, req, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (c *Client) ConfirmReservation(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.do(ctx, http.MethodPatch, "/reservas/"+escape(id)+"/confirmar", nil, nil, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (c *Client) CancelReservation(ctx context.Context, id string, req ports.CancelReservationRequest) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.do(ctx, http.MethodPatch, "/reservas/"+escape(id)+"/cancelar", nil, req, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/reservas/"+escape(id), nil, nil, nil)
}

func (c *Client) ReservationStats(ctx context.Context) (*domain.BookingStats, error) {
	var stats domain.BookingStats
	if err := c.do(ctx, http.MethodGet, "/reservas/estadisticas", nil, nil, &stats); err != nil {
		return nil, err
	}

	stats.Source = domain.StatsFromServer

	return &stats, nil
}
