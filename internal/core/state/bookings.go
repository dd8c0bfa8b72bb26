package state

import (
	"context"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type BookingGateway interface {
	ports.ReservationGateway
	ports.PaymentGateway
}

type BookingState struct {
	Status
	Bookings    []domain.Booking    `json:"bookings"`
	Selected    *domain.Booking     `json:"selected,omitempty"`
	Stats       domain.BookingStats `json:"stats"`
	StatsSource domain.StatsSource  `json:"statsSource"`
	Pagination  domain.Pagination   `json:"pagination"`
	LastPayment *domain.Payment     `json:"lastPayment,omitempty"`
}

// BookingStore keeps the booking list and its aggregates. Stats are
// recomputed from the list after every mutation; FetchStats replaces them
// with the backend's figures, which win until the next local mutation.
type BookingStore struct {
	base
	gw          BookingGateway
	bookings    []domain.Booking
	selected    *domain.Booking
	stats       domain.BookingStats
	pagination  domain.Pagination
	lastPayment *domain.Payment
}

func NewBookingStore(gw BookingGateway) *BookingStore {
	return &BookingStore{gw: gw, stats: domain.ComputeBookingStats(nil)}
}

func bookingID(b domain.Booking) string { return b.ID }

func (s *BookingStore) Snapshot() BookingState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return BookingState{
		Status:      s.status(),
		Bookings:    append([]domain.Booking(nil), s.bookings...),
		Selected:    s.selected,
		Stats:       s.stats,
		StatsSource: s.stats.Source,
		Pagination:  s.pagination,
		LastPayment: s.lastPayment,
	}
}

func (s *BookingStore) Stats() domain.BookingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stats
}

// setBookings must be called with s.mu held.
func (s *BookingStore) setBookings(bookings []domain.Booking) {
	s.bookings = bookings
	s.stats = domain.ComputeBookingStats(bookings)
}

// merge must be called with s.mu held.
func (s *BookingStore) merge(b *domain.Booking) {
	s.setBookings(upsert(s.bookings, *b, bookingID))
	if s.selected != nil && s.selected.ID == b.ID {
		s.selected = b
	}
}

func (s *BookingStore) FetchAll(ctx context.Context, q ports.ReservationQuery) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Page[domain.Booking], error) {
		return s.gw.ListReservations(ctx, q)
	}, func(page *domain.Page[domain.Booking]) {
		s.setBookings(page.Data)
		s.pagination = page.Pagination
	})

	return err
}

func (s *BookingStore) FetchMine(ctx context.Context) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) ([]domain.Booking, error) {
		return s.gw.MyReservations(ctx)
	}, func(bookings []domain.Booking) {
		s.setBookings(bookings)
		s.pagination = domain.Pagination{Page: 1, Limit: len(bookings), Total: len(bookings), Pages: 1}
	})

	return err
}

func (s *BookingStore) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Booking, error) {
		return s.gw.GetReservation(ctx, id)
	}, func(b *domain.Booking) {
		s.selected = b
		for i := range s.bookings {
			if s.bookings[i].ID == b.ID {
				s.bookings[i] = *b
				s.stats = domain.ComputeBookingStats(s.bookings)
			}
		}
	})
}

func (s *BookingStore) Create(ctx context.Context, req ports.CreateReservationRequest) (*domain.Booking, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Booking, error) {
		return s.gw.CreateReservation(ctx, req)
	}, func(b *domain.Booking) {
		s.merge(b)
		s.selected = b
	})
}

func (s *BookingStore) Update(ctx context.Context, id string, req ports.UpdateReservationRequest) (*domain.Booking, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Booking, error) {
		return s.gw.UpdateReservation(ctx, id, req)
	}, s.merge)
}

func (s *BookingStore) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Booking, error) {
		return s.gw.ConfirmReservation(ctx, id)
	}, s.merge)
}

func (s *BookingStore) Cancel(ctx context.Context, id, reason string) (*domain.Booking, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Booking, error) {
		return s.gw.CancelReservation(ctx, id, ports.CancelReservationRequest{Reason: reason})
	}, s.merge)
}

func (s *BookingStore) Delete(ctx context.Context, id string) error {
	_, err := dispatch(ctx, &s.base, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gw.DeleteReservation(ctx, id)
	}, func(struct{}) {
		s.setBookings(remove(s.bookings, id, bookingID))
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
		}
	})

	return err
}

func (s *BookingStore) FetchStats(ctx context.Context) (*domain.BookingStats, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.BookingStats, error) {
		return s.gw.ReservationStats(ctx)
	}, func(stats *domain.BookingStats) {
		s.stats = *stats
		s.stats.Source = domain.StatsFromServer
	})
}

func (s *BookingStore) Pay(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Payment, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Payment, error) {
		return s.gw.CreatePayment(ctx, req)
	}, func(p *domain.Payment) {
		s.lastPayment = p
	})
}

func (s *BookingStore) Payment(ctx context.Context, bookingID string) (*domain.Payment, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) (*domain.Payment, error) {
		return s.gw.PaymentForReservation(ctx, bookingID)
	}, func(p *domain.Payment) {
		s.lastPayment = p
	})
}

func (s *BookingStore) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return dispatch(ctx, &s.base, func(ctx context.Context) ([]domain.Payment, error) {
		return s.gw.ListPayments(ctx)
	}, nil)
}
