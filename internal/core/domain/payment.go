package domain

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pendiente"
	PaymentStatusApproved PaymentStatus = "aprobado"
	PaymentStatusRejected PaymentStatus = "rechazado"
)

type CardDetails struct {
	LastFour string `json:"ultimos4"`
	Brand    string `json:"marca"`
}

type TransferDetails struct {
	Reference string `json:"numeroReferencia"`
}

type DepositDetails struct {
	Receipt string `json:"numeroComprobante"`
}

// Payment is tied 1:1 to a booking. Exactly one of Card, Transfer or Deposit
// is set and it matches Method.
type Payment struct {
	ID        string           `json:"id"`
	BookingID string           `json:"reservaId"`
	Method    PaymentMethod    `json:"metodo"`
	Amount    float64          `json:"monto"`
	Currency  Currency         `json:"moneda"`
	Card      *CardDetails     `json:"tarjeta,omitempty"`
	Transfer  *TransferDetails `json:"transferencia,omitempty"`
	Deposit   *DepositDetails  `json:"deposito,omitempty"`
	Status    PaymentStatus    `json:"estado"`
	Notes     string           `json:"observaciones"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (p *Payment) Validate() error {
	set := 0
	if p.Card != nil {
		set++
	}
	if p.Transfer != nil {
		set++
	}
	if p.Deposit != nil {
		set++
	}

	if set != 1 {
		return fmt.Errorf("%w: exactly one payment detail block is required", ErrInvalidPaymentMethod)
	}

	switch {
	case p.Method == PaymentCard && p.Card != nil,
		p.Method == PaymentTransfer && p.Transfer != nil,
		p.Method == PaymentDeposit && p.Deposit != nil:
		return nil
	default:
		return fmt.Errorf("%w: details do not match method %s", ErrInvalidPaymentMethod, p.Method)
	}
}
