package ports

import (
	"context"
	"errors"

	"github.com/srgjo27/travel_agency/internal/core/domain"
)

type PackageGateway interface {
	ListPackages(ctx context.Context, q PackageQuery) (*domain.Page[domain.Package], error)
	GetPackage(ctx context.Context, id string) (*domain.Package, error)
	CreatePackage(ctx context.Context, in PackageInput) (*domain.Package, error)
	UpdatePackage(ctx context.Context, id string, in PackageInput) (*domain.Package, error)
	DeletePackage(ctx context.Context, id string) error
}

type ReservationGateway interface {
	ListReservations(ctx context.Context, q ReservationQuery) (*domain.Page[domain.Booking], error)
	MyReservations(ctx context.Context) ([]domain.Booking, error)
	GetReservation(ctx context.Context, id string) (*domain.Booking, error)
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Booking, error)
	UpdateReservation(ctx context.Context, id string, req UpdateReservationRequest) (*domain.Booking, error)
	ConfirmReservation(ctx context.Context, id string) (*domain.Booking, error)
	CancelReservation(ctx context.Context, id string, req CancelReservationRequest) (*domain.Booking, error)
	DeleteReservation(ctx context.Context, id string) error
	ReservationStats(ctx context.Context) (*domain.BookingStats, error)
}

type PaymentGateway interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error)
	PaymentForReservation(ctx context.Context, bookingID string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

type SubscriberGateway interface {
	ListSubscribers(ctx context.Context, q ListQuery) (*domain.Page[domain.Subscriber], error)
	CreateSubscriber(ctx context.Context, in SubscriberInput) (*domain.Subscriber, error)
	UpdateSubscriber(ctx context.Context, id string, req UpdateSubscriberRequest) (*domain.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) error
	SubscriberStats(ctx context.Context) (*domain.SubscriberStats, error)
}

type UserGateway interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context, q ListQuery) (*domain.Page[domain.User], error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

// Backend is the whole REST surface bound to one session.
type Backend interface {
	PackageGateway
	ReservationGateway
	PaymentGateway
	SubscriberGateway
	UserGateway
}

type BackendFactory interface {
	ForSession(session *domain.Session) Backend
}

var ErrSessionNotFound = errors.New("session not found")

// SessionStore is the durable home of the auth token between requests.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, rec domain.SessionRecord) error
	Load(ctx context.Context, sessionID string) (*domain.SessionRecord, error)
	Delete(ctx context.Context, sessionID string) error
}

type ImageStorage interface {
	Upload(ctx context.Context, folder, filename string, data []byte) (string, error)
	Delete(ctx context.Context, publicURL string) error
}
