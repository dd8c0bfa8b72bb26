package state

import (
	"context"
	"strings"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type TravelState struct {
	Status
	Packages   []domain.Package  `json:"packages"`
	Selected   *domain.Package   `json:"selected,omitempty"`
	Pagination domain.Pagination `json:"pagination"`
}

type TravelStore struct {
	base
	gw         ports.PackageGateway
	packages   []domain.Package
	selected   *domain.Package
	pagination domain.Pagination
}

func NewTravelStore(gw ports.PackageGateway) *TravelStore {
	return &TravelStore{gw: gw}
}

func packageID(p domain.Package) string { return p.ID }

func (s *TravelStore) Snapshot() TravelState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return TravelState{
		Status:     s.status(),
		Packages:   append([]domain.Package(nil), s.packages...),
		Selected:   s.selected,
		Pagination: s.pagination,
	}
}

func (s *TravelStore) Fetch(ctx context.Context, q ports.PackageQuery) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Page[domain.Package], error) {
		return s.gw.ListPackages(ctx, q)
	}, func(page *domain.Page[domain.Package]) {
		s.packages = page.Data
		s.pagination = page.Pagination
	})

	return err
}

func (s *TravelStore) Get(ctx context.Context, id string) (*domain.Package, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Package, error) {
		return s.gw.GetPackage(ctx, id)
	}, func(pkg *domain.Package) {
		s.selected = pkg
		for i := range s.packages {
			if s.packages[i].ID == pkg.ID {
				s.packages[i] = *pkg
			}
		}
	})
}

func (s *TravelStore) Create(ctx context.Context, in ports.PackageInput) (*domain.Package, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Package, error) {
		return s.gw.CreatePackage(ctx, in)
	}, func(pkg *domain.Package) {
		s.packages = upsert(s.packages, *pkg, packageID)
		s.selected = pkg
	})
}

func (s *TravelStore) Update(ctx context.Context, id string, in ports.PackageInput) (*domain.Package, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Package, error) {
		return s.gw.UpdatePackage(ctx, id, in)
	}, func(pkg *domain.Package) {
		s.packages = upsert(s.packages, *pkg, packageID)
		if s.selected != nil && s.selected.ID == pkg.ID {
			s.selected = pkg
		}
	})
}

func (s *TravelStore) Delete(ctx context.Context, id string) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gw.DeletePackage(ctx, id)
	}, func(struct{}) {
		s.packages = remove(s.packages, id, packageID)
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
		}
	})

	return err
}

// Filter narrows the loaded catalog without another backend call. Price
// bounds are expressed in Currency; zero bounds are ignored.
type Filter struct {
	Category     domain.Category
	Search       string
	MinPrice     float64
	MaxPrice     float64
	Currency     domain.Currency
	FeaturedOnly bool
	ActiveOnly   bool
}

func (s *TravelStore) Filtered(f Filter) []domain.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return f.Apply(s.packages)
}

func (f Filter) Apply(packages []domain.Package) []domain.Package {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	currency := f.Currency
	if currency == "" {
		currency = domain.BaseCurrency
	}

	out := make([]domain.Package, 0, len(packages))
	for _, p := range packages {
		if f.ActiveOnly && !p.Active {
			continue
		}

		if f.FeaturedOnly && !p.Featured {
			continue
		}

		if f.Category != "" && p.ResolvedCategory() != f.Category {
			continue
		}

		if search != "" && !matchesSearch(p, search) {
			continue
		}

		if f.MinPrice > 0 || f.MaxPrice > 0 {
			price, err := domain.Convert(p.Price, p.Currency, currency)
			if err != nil {
				continue
			}

			if f.MinPrice > 0 && price < f.MinPrice {
				continue
			}

			if f.MaxPrice > 0 && price > f.MaxPrice {
				continue
			}
		}

		out = append(out, p)
	}

	return out
}

func matchesSearch(p domain.Package, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Destination), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}
