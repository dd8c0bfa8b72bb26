package services

import (
	"context"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

type NewsletterService struct {
	subscribers *state.SubscriberStore
}

func NewNewsletterService(gw ports.SubscriberGateway) *NewsletterService {
	return &NewsletterService{subscribers: state.NewSubscriberStore(gw)}
}

func (s *NewsletterService) Subscribe(ctx context.Context, form forms.SubscriberForm) (*domain.Subscriber, error) {
	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	return s.subscribers.Subscribe(ctx, form.Request())
}
