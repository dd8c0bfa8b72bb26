package state

import (
	"context"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type UserState struct {
	Status
	Users      []domain.User     `json:"users"`
	Selected   *domain.User      `json:"selected,omitempty"`
	Pagination domain.Pagination `json:"pagination"`
}

type UserStore struct {
	base
	gw         ports.UserGateway
	users      []domain.User
	selected   *domain.User
	pagination domain.Pagination
}

func NewUserStore(gw ports.UserGateway) *UserStore {
	return &UserStore{gw: gw}
}

func userID(u domain.User) string { return u.ID }

func (s *UserStore) Snapshot() UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return UserState{
		Status:     s.status(),
		Users:      append([]domain.User(nil), s.users...),
		Selected:   s.selected,
		Pagination: s.pagination,
	}
}

func (s *UserStore) Fetch(ctx context.Context, q ports.ListQuery) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Page[domain.User], error) {
		return s.gw.ListUsers(ctx, q)
	}, func(page *domain.Page[domain.User]) {
		s.users = page.Data
		s.pagination = page.Pagination
	})

	return err
}

func (s *UserStore) Get(ctx context.Context, id string) (*domain.User, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.User, error) {
		return s.gw.GetUser(ctx, id)
	}, func(u *domain.User) {
		s.selected = u
	})
}

func (s *UserStore) Update(ctx context.Context, id string, req ports.UpdateUserRequest) (*domain.User, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.User, error) {
		return s.gw.UpdateUser(ctx, id, req)
	}, func(u *domain.User) {
		s.users = upsert(s.users, *u, userID)
		if s.selected != nil && s.selected.ID == u.ID {
			s.selected = u
		}
	})
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gw.DeleteUser(ctx, id)
	}, func(struct{}) {
		s.users = remove(s.users, id, userID)
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
		}
	})

	return err
}
