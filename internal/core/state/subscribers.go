package state

import (
	"context"
	"fmt"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type SubscriberState struct {
	Status
	Subscribers []domain.Subscriber    `json:"subscribers"`
	Stats       domain.SubscriberStats `json:"stats"`
	Pagination  domain.Pagination      `json:"pagination"`
	Subscribed  *domain.Subscriber     `json:"subscribed,omitempty"`
}

type SubscriberStore struct {
	base
	gw          ports.SubscriberGateway
	subscribers []domain.Subscriber
	stats       domain.SubscriberStats
	pagination  domain.Pagination
	subscribed  *domain.Subscriber
}

func NewSubscriberStore(gw ports.SubscriberGateway) *SubscriberStore {
	return &SubscriberStore{gw: gw, stats: domain.ComputeSubscriberStats(nil)}
}

func subscriberID(s domain.Subscriber) string { return s.ID }

func (s *SubscriberStore) Snapshot() SubscriberState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SubscriberState{
		Status:      s.status(),
		Subscribers: append([]domain.Subscriber(nil), s.subscribers...),
		Stats:       s.stats,
		Pagination:  s.pagination,
		Subscribed:  s.subscribed,
	}
}

// setSubscribers must be called with s.mu held.
func (s *SubscriberStore) setSubscribers(subs []domain.Subscriber) {
	s.subscribers = subs
	s.stats = domain.ComputeSubscriberStats(subs)
}

func (s *SubscriberStore) Fetch(ctx context.Context, q ports.ListQuery) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Page[domain.Subscriber], error) {
		return s.gw.ListSubscribers(ctx, q)
	}, func(page *domain.Page[domain.Subscriber]) {
		s.setSubscribers(page.Data)
		s.pagination = page.Pagination
	})

	return err
}

// Subscribe is the newsletter form submission.
func (s *SubscriberStore) Subscribe(ctx context.Context, in ports.SubscriberInput) (*domain.Subscriber, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Subscriber, error) {
		return s.gw.CreateSubscriber(ctx, in)
	}, func(sub *domain.Subscriber) {
		s.subscribed = sub
		s.setSubscribers(upsert(s.subscribers, *sub, subscriberID))
	})
}

func (s *SubscriberStore) Update(ctx context.Context, id string, req ports.UpdateSubscriberRequest) (*domain.Subscriber, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Subscriber, error) {
		return s.gw.UpdateSubscriber(ctx, id, req)
	}, func(sub *domain.Subscriber) {
		s.setSubscribers(upsert(s.subscribers, *sub, subscriberID))
	})
}

// ToggleActive flips the active flag of a subscriber already loaded by Fetch.
func (s *SubscriberStore) ToggleActive(ctx context.Context, id string) (*domain.Subscriber, error) {
	s.mu.RLock()
	var current *domain.Subscriber
	for i := range s.subscribers {
		if s.subscribers[i].ID == id {
			sub := s.subscribers[i]
			current = &sub
		}
	}
	s.mu.RUnlock()

	if current == nil {
		return nil, fmt.Errorf("subscriber %s is not loaded", id)
	}

	active := !current.Active

	return s.Update(ctx, id, ports.UpdateSubscriberRequest{Active: &active})
}

func (s *SubscriberStore) Delete(ctx context.Context, id string) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gw.DeleteSubscriber(ctx, id)
	}, func(struct{}) {
		s.setSubscribers(remove(s.subscribers, id, subscriberID))
	})

	return err
}

func (s *SubscriberStore) FetchStats(ctx context.Context) (*domain.SubscriberStats, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.SubscriberStats, error) {
		return s.gw.SubscriberStats(ctx)
	}, func(stats *domain.SubscriberStats) {
		s.stats = *stats
	})
}
