package api

import (
	"context"
	"net/http"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

func (c *Client) ListSubscribers(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.Subscriber], error) {
	var page domain.Page[domain.Subscriber]
	if err := c.do(ctx, http.MethodGet, "/suscriptores", listValues(q), nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) CreateSubscriber(ctx context.Context, in ports.SubscriberInput) (*domain.Subscriber, error) {
	var s domain.Subscriber
	if err := c.do(ctx, http.MethodPost, "/suscriptores", nil, in, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func (c *Client) UpdateSubscriber(ctx context.Context, id string, req ports.UpdateSubscriberRequest) (*domain.Subscriber, error) {
	var s domain.Subscriber
	if err := c.do(ctx, http.MethodPut, "/suscriptores/"+escape(id), nil, req, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func (c *Client) DeleteSubscriber(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/suscriptores/"+escape(id), nil, nil, nil)
}

func (c *Client) SubscriberStats(ctx context.Context) (*domain.SubscriberStats, error) {
	var stats domain.SubscriberStats
	if err := c.do(ctx, http.MethodGet, "/suscriptores/estadisticas", nil, nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
