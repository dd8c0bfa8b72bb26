package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pendiente"
	BookingConfirmed BookingStatus = "confirmada"
	BookingCancelled BookingStatus = "cancelada"
	BookingCompleted BookingStatus = "completada"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(s); status {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidBookingStatus, s)
	}
}

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "tarjeta"
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentDeposit  PaymentMethod = "deposito"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch method := PaymentMethod(s); method {
	case PaymentCard, PaymentTransfer, PaymentDeposit:
		return method, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, s)
	}
}

type BookingAction string

const (
	ActionConfirm BookingAction = "confirmar"
	ActionCancel  BookingAction = "cancelar"
	ActionDelete  BookingAction = "eliminar"
	ActionPay     BookingAction = "pagar"
)

// Actions gates which buttons a booking shows. Valid transitions are decided
// by the backend; this only mirrors them for display.
func (s BookingStatus) Actions() []BookingAction {
	switch s {
	case BookingPending:
		return []BookingAction{ActionConfirm, ActionCancel, ActionDelete}
	case BookingConfirmed:
		return []BookingAction{ActionPay, ActionCancel}
	case BookingCancelled:
		return []BookingAction{ActionDelete}
	default:
		return []BookingAction{}
	}
}

func (s BookingStatus) Allows(action BookingAction) bool {
	for _, a := range s.Actions() {
		if a == action {
			return true
		}
	}

	return false
}

type Contact struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Phone string `json:"telefono"`
}

type Booking struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"numeroReserva"`
	UserID        string        `json:"usuarioId"`
	Package       PackageRef    `json:"paquete"`
	TravelDate    Date          `json:"fechaViaje"`
	People        int           `json:"cantidadPersonas"`
	TotalPrice    float64       `json:"precioTotal"`
	Status        BookingStatus `json:"estado"`
	PaymentMethod PaymentMethod `json:"metodoPago"`
	Contact       Contact       `json:"datosContacto"`
	Notes         string        `json:"observaciones"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type StatsSource string

const (
	StatsFromClient StatsSource = "client"
	StatsFromServer StatsSource = "server"
)

type BookingStats struct {
	TotalBookings     int         `json:"totalReservas"`
	PendingBookings   int         `json:"reservasPendientes"`
	ConfirmedBookings int         `json:"reservasConfirmadas"`
	CancelledBookings int         `json:"reservasCanceladas"`
	CompletedBookings int         `json:"reservasCompletadas"`
	TotalRevenue      float64     `json:"ingresosTotales"`
	Source            StatsSource `json:"-"`
}

// ComputeBookingStats derives the dashboard aggregates from a list. Revenue
// only counts confirmed and completed bookings.
func ComputeBookingStats(bookings []Booking) BookingStats {
	stats := BookingStats{
		TotalBookings: len(bookings),
		Source:        StatsFromClient,
	}

	for _, b := range bookings {
		switch b.Status {
		case BookingPending:
			stats.PendingBookings++
		case BookingConfirmed:
			stats.ConfirmedBookings++
			stats.TotalRevenue += b.TotalPrice
		case BookingCancelled:
			stats.CancelledBookings++
		case BookingCompleted:
			stats.CompletedBookings++
			stats.TotalRevenue += b.TotalPrice
		}
	}

	return stats
}
