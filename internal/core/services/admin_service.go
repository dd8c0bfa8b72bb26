package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

const (
	packageImagesFolder = "paquetes"
	subscriberScanLimit = 500
)

type Dashboard struct {
	Bookings    []BookingView           `json:"reservas"`
	Stats       domain.BookingStats     `json:"estadisticas"`
	StatsSource domain.StatsSource      `json:"fuenteEstadisticas"`
	Pagination  domain.Pagination       `json:"pagination"`
	Subscribers *domain.SubscriberStats `json:"suscriptores,omitempty"`
	Warnings    []string                `json:"avisos,omitempty"`
}

type BookingChange struct {
	Booking *BookingView        `json:"reserva,omitempty"`
	Stats   domain.BookingStats `json:"estadisticas"`
}

// AdminService is the back office. Callers must hold an admin session; the
// backend enforces the same rule on its side.
type AdminService struct {
	session     *domain.Session
	backend     ports.Backend
	images      ports.ImageStorage
	log         logrus.FieldLogger
	bookings    *state.BookingStore
	travels     *state.TravelStore
	subscribers *state.SubscriberStore
	users       *state.UserStore
}

func NewAdminService(session *domain.Session, backend ports.Backend, images ports.ImageStorage, log logrus.FieldLogger) *AdminService {
	return &AdminService{
		session:     session,
		backend:     backend,
		images:      images,
		log:         log,
		bookings:    state.NewBookingStore(backend),
		travels:     state.NewTravelStore(backend),
		subscribers: state.NewSubscriberStore(backend),
		users:       state.NewUserStore(backend),
	}
}

func (s *AdminService) authorize() error {
	if !s.session.Valid() {
		return domain.ErrNotAuthenticated
	}

	if !s.session.User.IsAdmin() {
		return domain.ErrForbidden
	}

	return nil
}

// Dashboard loads the booking list and then the server stats, which replace
// the locally computed ones. Subscriber stats load in parallel. A failed
// stats call degrades to the local figures instead of failing the page.
func (s *AdminService) Dashboard(ctx context.Context, q ports.ReservationQuery) (*Dashboard, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	subscriberStats := state.Go(ctx, func(ctx context.Context) error {
		_, err := s.subscribers.FetchStats(ctx)
		return err
	})
	defer subscriberStats.Cancel()

	if err := s.bookings.FetchAll(ctx, q); err != nil {
		return nil, err
	}

	dash := &Dashboard{}

	if _, err := s.bookings.FetchStats(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		s.log.WithError(err).Warn("booking stats unavailable, using local figures")
		dash.Warnings = append(dash.Warnings, "Estadísticas calculadas localmente")
	}

	if err := subscriberStats.Wait(); err != nil {
		s.log.WithError(err).Warn("subscriber stats unavailable")
	} else {
		stats := s.subscribers.Snapshot().Stats
		dash.Subscribers = &stats
	}

	snap := s.bookings.Snapshot()

	views, err := bookingViews(snap.Bookings)
	if err != nil {
		return nil, err
	}

	dash.Bookings = views
	dash.Stats = snap.Stats
	dash.StatsSource = snap.StatsSource
	dash.Pagination = snap.Pagination

	return dash, nil
}

func (s *AdminService) Booking(ctx context.Context, id string) (*BookingView, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := NewBookingView(*b)
	if err != nil {
		return nil, err
	}

	return &view, nil
}

func (s *AdminService) ConfirmBooking(ctx context.Context, id string) (*BookingChange, error) {
	return s.changeBooking(ctx, id, domain.ActionConfirm, func(ctx context.Context) (*domain.Booking, error) {
		return s.bookings.Confirm(ctx, id)
	})
}

func (s *AdminService) CancelBooking(ctx context.Context, id, reason string) (*BookingChange, error) {
	return s.changeBooking(ctx, id, domain.ActionCancel, func(ctx context.Context) (*domain.Booking, error) {
		return s.bookings.Cancel(ctx, id, reason)
	})
}

func (s *AdminService) DeleteBooking(ctx context.Context, id string) (*BookingChange, error) {
	return s.changeBooking(ctx, id, domain.ActionDelete, func(ctx context.Context) (*domain.Booking, error) {
		return nil, s.bookings.Delete(ctx, id)
	})
}

// changeBooking loads the booking to check the action against its status
// before asking the backend, which has the final word on the transition.
func (s *AdminService) changeBooking(ctx context.Context, id string, action domain.BookingAction, apply func(context.Context) (*domain.Booking, error)) (*BookingChange, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	current, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.Allows(action) {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrActionNotAllowed, action, current.Status)
	}

	updated, err := apply(ctx)
	if err != nil {
		return nil, err
	}

	change := &BookingChange{Stats: s.bookings.Stats()}
	if updated != nil {
		view, err := NewBookingView(*updated)
		if err != nil {
			return nil, err
		}

		change.Booking = &view
	}

	return change, nil
}

func (s *AdminService) Payments(ctx context.Context) ([]domain.Payment, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	return s.bookings.ListPayments(ctx)
}

func (s *AdminService) BookingPayment(ctx context.Context, bookingID string) (*domain.Payment, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	return s.bookings.Payment(ctx, bookingID)
}

func (s *AdminService) Packages(ctx context.Context, q ports.PackageQuery, display domain.Currency) ([]PackageView, *domain.Pagination, error) {
	if err := s.authorize(); err != nil {
		return nil, nil, err
	}

	if err := s.travels.Fetch(ctx, q); err != nil {
		return nil, nil, err
	}

	snap := s.travels.Snapshot()

	views, err := packageViews(snap.Packages, display, s.log)
	if err != nil {
		return nil, nil, err
	}

	return views, &snap.Pagination, nil
}

// SavePackage creates the package when id is empty and updates it otherwise.
func (s *AdminService) SavePackage(ctx context.Context, id string, form forms.PackageForm) (*domain.Package, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	if id == "" {
		return s.travels.Create(ctx, form.Input())
	}

	return s.travels.Update(ctx, id, form.Input())
}

// DeletePackage removes the package and then, best effort, its stored images.
func (s *AdminService) DeletePackage(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}

	pkg, err := s.travels.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.travels.Delete(ctx, id); err != nil {
		return err
	}

	for _, image := range pkg.Images {
		if err := s.images.Delete(context.WithoutCancel(ctx), image); err != nil {
			s.log.WithError(err).WithField("image", image).Warn("failed to delete package image")
		}
	}

	return nil
}

func (s *AdminService) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if err := s.authorize(); err != nil {
		return "", err
	}

	return s.images.Upload(ctx, packageImagesFolder, filename, data)
}

func (s *AdminService) DeleteImage(ctx context.Context, publicURL string) error {
	if err := s.authorize(); err != nil {
		return err
	}

	return s.images.Delete(ctx, publicURL)
}

func (s *AdminService) Subscribers(ctx context.Context, q ports.ListQuery) (*state.SubscriberState, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	if err := s.subscribers.Fetch(ctx, q); err != nil {
		return nil, err
	}

	snap := s.subscribers.Snapshot()

	return &snap, nil
}

func (s *AdminService) SubscriberStats(ctx context.Context) (*domain.SubscriberStats, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	return s.subscribers.FetchStats(ctx)
}

func (s *AdminService) UpdateSubscriber(ctx context.Context, id string, form forms.SubscriberForm) (*domain.Subscriber, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	return s.subscribers.Update(ctx, id, form.Update())
}

// ToggleSubscriber needs the subscriber loaded to know its current flag.
func (s *AdminService) ToggleSubscriber(ctx context.Context, id string) (*domain.Subscriber, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	if err := s.subscribers.Fetch(ctx, ports.ListQuery{Page: 1, Limit: subscriberScanLimit}); err != nil {
		return nil, err
	}

	return s.subscribers.ToggleActive(ctx, id)
}

func (s *AdminService) DeleteSubscriber(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}

	return s.subscribers.Delete(ctx, id)
}

func (s *AdminService) Users(ctx context.Context, q ports.ListQuery) (*state.UserState, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	if err := s.users.Fetch(ctx, q); err != nil {
		return nil, err
	}

	snap := s.users.Snapshot()

	return &snap, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, form forms.UserForm) (*domain.User, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	if err := forms.Validate(form); err != nil {
		return nil, err
	}

	return s.users.Update(ctx, id, form.Request())
}

// DeleteUser refuses to remove the account of the admin making the call.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}

	if id == s.session.User.ID {
		return domain.ErrForbidden
	}

	return s.users.Delete(ctx, id)
}
