package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/domain"
)

// PackageView is a package as a page renders it: resolved category, discount
// and prices converted to the display currency.
type PackageView struct {
	domain.Package
	ResolvedCategory   domain.Category `json:"categoriaResuelta"`
	Discount           int             `json:"descuento"`
	DisplayCurrency    domain.Currency `json:"monedaVista"`
	DisplayPrice       float64         `json:"precioVista"`
	PriceLabel         string          `json:"precioFormateado"`
	PreviousPriceLabel string          `json:"precioAnteriorFormateado,omitempty"`
	Cover              string          `json:"portada,omitempty"`
}

func NewPackageView(p domain.Package, display domain.Currency) (PackageView, error) {
	if display == "" {
		display = p.Currency
	}

	price, err := domain.Convert(p.Price, p.Currency, display)
	if err != nil {
		return PackageView{}, err
	}

	label, err := domain.FormatPrice(price, display)
	if err != nil {
		return PackageView{}, err
	}

	view := PackageView{
		Package:          p,
		ResolvedCategory: p.ResolvedCategory(),
		Discount:         p.DiscountPercent(),
		DisplayCurrency:  display,
		DisplayPrice:     price,
		PriceLabel:       label,
		Cover:            p.CoverImage(),
	}

	if view.Discount > 0 {
		previous, err := domain.Convert(*p.PreviousPrice, p.Currency, display)
		if err != nil {
			return PackageView{}, err
		}

		view.PreviousPriceLabel, err = domain.FormatPrice(previous, display)
		if err != nil {
			return PackageView{}, err
		}
	}

	return view, nil
}

// packageViews leaves out packages whose prices cannot be shown, so one bad
// row does not take the whole listing down.
func packageViews(packages []domain.Package, display domain.Currency, log logrus.FieldLogger) ([]PackageView, error) {
	if display != "" && !display.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, display)
	}

	views := make([]PackageView, 0, len(packages))
	for _, p := range packages {
		v, err := NewPackageView(p, display)
		if err != nil {
			log.WithError(err).WithField("paquete", p.ID).Warn("package skipped from listing")
			continue
		}

		views = append(views, v)
	}

	return views, nil
}

// BookingView carries the actions the current status allows.
type BookingView struct {
	domain.Booking
	Actions    []domain.BookingAction `json:"acciones"`
	TotalLabel string                 `json:"precioTotalFormateado"`
}

// NewBookingView labels the total in the booked package's currency. Bookings
// whose package copy has none are labelled in the base currency.
func NewBookingView(b domain.Booking) (BookingView, error) {
	currency := b.Package.Currency
	if currency == "" {
		currency = domain.BaseCurrency
	}

	label, err := domain.FormatPrice(b.TotalPrice, currency)
	if err != nil {
		return BookingView{}, err
	}

	return BookingView{
		Booking:    b,
		Actions:    b.Status.Actions(),
		TotalLabel: label,
	}, nil
}

func bookingViews(bookings []domain.Booking) ([]BookingView, error) {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		v, err := NewBookingView(b)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}

		views = append(views, v)
	}

	return views, nil
}
