package forms

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type PaymentForm struct {
	Method     string `json:"metodo" validate:"required,oneof=tarjeta transferencia deposito"`
	CardNumber string `json:"numeroTarjeta" validate:"required_if=Method tarjeta"`
	CardHolder string `json:"titular" validate:"required_if=Method tarjeta,max=100"`
	CardExpiry string `json:"vencimiento" validate:"required_if=Method tarjeta"`
	CardCVV    string `json:"cvv" validate:"required_if=Method tarjeta"`
	Reference  string `json:"numeroReferencia" validate:"required_if=Method transferencia,max=60"`
	Receipt    string `json:"numeroComprobante" validate:"required_if=Method deposito,max=60"`
	Notes      string `json:"observaciones" validate:"max=500"`
}

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

func validatePaymentDetails(sl validator.StructLevel) {
	f := sl.Current().Interface().(PaymentForm)
	if f.Method != string(domain.PaymentCard) {
		return
	}

	if f.CardNumber != "" && sl.Validator().Var(digitsOnly(f.CardNumber), "credit_card") != nil {
		sl.ReportError(f.CardNumber, "numeroTarjeta", "CardNumber", "credit_card", "")
	}

	if f.CardExpiry != "" && !expiryPattern.MatchString(f.CardExpiry) {
		sl.ReportError(f.CardExpiry, "vencimiento", "CardExpiry", "numeric", "")
	}

	if f.CardCVV != "" && !cvvPattern.MatchString(f.CardCVV) {
		sl.ReportError(f.CardCVV, "cvv", "CardCVV", "numeric", "")
	}
}

// Request never carries the full card number: only the last four digits and
// the detected brand leave this process.
func (f PaymentForm) Request(bookingID string, amount float64, currency domain.Currency) (ports.CreatePaymentRequest, error) {
	method, err := domain.ParsePaymentMethod(f.Method)
	if err != nil {
		return ports.CreatePaymentRequest{}, err
	}

	req := ports.CreatePaymentRequest{
		BookingID: bookingID,
		Method:    method,
		Amount:    amount,
		Currency:  currency,
		Notes:     strings.TrimSpace(f.Notes),
	}

	switch method {
	case domain.PaymentCard:
		card := MaskCard(f.CardNumber)
		req.Card = &card
	case domain.PaymentTransfer:
		req.Transfer = &domain.TransferDetails{Reference: strings.TrimSpace(f.Reference)}
	case domain.PaymentDeposit:
		req.Deposit = &domain.DepositDetails{Receipt: strings.TrimSpace(f.Receipt)}
	}

	return req, nil
}

func MaskCard(number string) domain.CardDetails {
	digits := digitsOnly(number)

	last := digits
	if len(digits) > 4 {
		last = digits[len(digits)-4:]
	}

	return domain.CardDetails{LastFour: last, Brand: CardBrand(digits)}
}

func CardBrand(digits string) string {
	switch {
	case strings.HasPrefix(digits, "4"):
		return "visa"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "amex"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "mastercard"
	case len(digits) >= 2 && digits[0] == '2' && digits[1] >= '2' && digits[1] <= '7':
		return "mastercard"
	case strings.HasPrefix(digits, "6"):
		return "discover"
	default:
		return "desconocida"
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
