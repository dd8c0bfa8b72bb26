package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

const (
	catalogPageSize = 100
	featuredLimit   = 6
)

type CatalogQuery struct {
	Filter  state.Filter
	Display domain.Currency
	Page    int
}

type CatalogView struct {
	Packages   []PackageView     `json:"paquetes"`
	Categories []domain.Category `json:"categorias"`
	Currencies []domain.Currency `json:"monedas"`
	Pagination domain.Pagination `json:"pagination"`
}

type CatalogService struct {
	travels *state.TravelStore
	log     logrus.FieldLogger
}

func NewCatalogService(gw ports.PackageGateway, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{travels: state.NewTravelStore(gw), log: log}
}

func (s *CatalogService) Travels() *state.TravelStore {
	return s.travels
}

// List loads one page of active packages and narrows it locally, so
// category and price filters never cost another backend round trip.
func (s *CatalogService) List(ctx context.Context, q CatalogQuery) (*CatalogView, error) {
	active := true

	err := s.travels.Fetch(ctx, ports.PackageQuery{
		ListQuery: ports.ListQuery{Page: q.Page, Limit: catalogPageSize},
		Active:    &active,
	})
	if err != nil {
		return nil, err
	}

	filter := q.Filter
	filter.ActiveOnly = true
	if filter.Currency == "" {
		filter.Currency = q.Display
	}

	views, err := packageViews(s.travels.Filtered(filter), q.Display, s.log)
	if err != nil {
		return nil, err
	}

	return &CatalogView{
		Packages:   views,
		Categories: domain.Categories(),
		Currencies: domain.Currencies(),
		Pagination: s.travels.Snapshot().Pagination,
	}, nil
}

func (s *CatalogService) Featured(ctx context.Context, display domain.Currency) ([]PackageView, error) {
	active, featured := true, true

	err := s.travels.Fetch(ctx, ports.PackageQuery{
		ListQuery: ports.ListQuery{Page: 1, Limit: featuredLimit},
		Featured:  &featured,
		Active:    &active,
	})
	if err != nil {
		return nil, err
	}

	return packageViews(s.travels.Filtered(state.Filter{FeaturedOnly: true, ActiveOnly: true}), display, s.log)
}

func (s *CatalogService) Detail(ctx context.Context, id string, display domain.Currency) (*PackageView, error) {
	pkg, err := s.travels.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := NewPackageView(*pkg, display)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
