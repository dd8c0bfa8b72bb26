package services

import (
	"context"
	"fmt"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

type QuoteRequest struct {
	PackageID string          `json:"paqueteId"`
	People    int             `json:"cantidadPersonas"`
	Currency  domain.Currency `json:"moneda"`
}

type Quote struct {
	Package      PackageView     `json:"paquete"`
	People       int             `json:"cantidadPersonas"`
	Total        float64         `json:"precioTotal"`
	Currency     domain.Currency `json:"moneda"`
	DisplayTotal float64         `json:"precioTotalVista"`
	TotalLabel   string          `json:"precioTotalFormateado"`
}

// BookingService drives the customer side of a booking: quote, submit,
// list and pay. It is built per request around the caller's session.
type BookingService struct {
	session  *domain.Session
	travels  *state.TravelStore
	bookings *state.BookingStore
}

func NewBookingService(session *domain.Session, packages ports.PackageGateway, bookings state.BookingGateway) *BookingService {
	return &BookingService{
		session:  session,
		travels:  state.NewTravelStore(packages),
		bookings: state.NewBookingStore(bookings),
	}
}

func (s *BookingService) Bookings() *state.BookingStore {
	return s.bookings
}

// Quote prices a draft without writing anything to the backend.
func (s *BookingService) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if req.PackageID == "" {
		return nil, domain.ErrPackageNotSelected
	}

	pkg, err := s.travels.Get(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	draft := domain.NewBookingDraft(pkg, req.People)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	return newQuote(draft, req.Currency)
}

func newQuote(draft *domain.BookingDraft, display domain.Currency) (*Quote, error) {
	if display == "" {
		display = draft.Currency()
	}

	view, err := NewPackageView(*draft.Package(), display)
	if err != nil {
		return nil, err
	}

	displayTotal, err := draft.TotalIn(display)
	if err != nil {
		return nil, err
	}

	label, err := domain.FormatPrice(displayTotal, display)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Package:      view,
		People:       draft.People(),
		Total:        draft.Total(),
		Currency:     draft.Currency(),
		DisplayTotal: displayTotal,
		TotalLabel:   label,
	}, nil
}

// Submit validates the form, prices it against the current package and
// creates the booking. The total sent is always recomputed here.
func (s *BookingService) Submit(ctx context.Context, form forms.BookingForm) (*BookingView, error) {
	if !s.session.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	pkg, err := s.travels.Get(ctx, form.PackageID)
	if err != nil {
		return nil, err
	}

	if !pkg.Active {
		return nil, domain.ErrPackageInactive
	}

	draft := domain.NewBookingDraft(pkg, form.People)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	req, err := form.Request(draft.Total(), draft.Currency())
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	created := *booking
	if created.Package.Currency == "" {
		created.Package.Currency = draft.Currency()
	}

	view, err := NewBookingView(created)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

type MyBookings struct {
	Bookings []BookingView       `json:"reservas"`
	Stats    domain.BookingStats `json:"estadisticas"`
}

func (s *BookingService) Mine(ctx context.Context) (*MyBookings, error) {
	if !s.session.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	if err := s.bookings.FetchMine(ctx); err != nil {
		return nil, err
	}

	snap := s.bookings.Snapshot()

	views, err := bookingViews(snap.Bookings)
	if err != nil {
		return nil, err
	}

	return &MyBookings{Bookings: views, Stats: snap.Stats}, nil
}

// Cancel lets a customer withdraw one of their own bookings.
func (s *BookingService) Cancel(ctx context.Context, id, reason string) (*BookingView, error) {
	booking, err := s.owned(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.Allows(domain.ActionCancel) {
		return nil, fmt.Errorf("%w: %s", domain.ErrActionNotAllowed, booking.Status)
	}

	cancelled, err := s.bookings.Cancel(ctx, id, reason)
	if err != nil {
		return nil, err
	}

	view, err := NewBookingView(*cancelled)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

// Pay registers the payment of a confirmed booking, charged in the currency
// of the booked package.
func (s *BookingService) Pay(ctx context.Context, id string, form forms.PaymentForm) (*domain.Payment, error) {
	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	booking, err := s.owned(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.Allows(domain.ActionPay) {
		return nil, fmt.Errorf("%w: %s", domain.ErrActionNotAllowed, booking.Status)
	}

	currency := booking.Package.Currency
	if !currency.Valid() {
		currency = domain.BaseCurrency
		if pkg, err := s.travels.Get(ctx, booking.Package.ID); err == nil && pkg.Currency.Valid() {
			currency = pkg.Currency
		} else if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	req, err := form.Request(booking.ID, booking.TotalPrice, currency)
	if err != nil {
		return nil, err
	}

	return s.bookings.Pay(ctx, req)
}

func (s *BookingService) owned(ctx context.Context, id string) (*domain.Booking, error) {
	if !s.session.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != s.session.User.ID && !s.session.User.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	return booking, nil
}
