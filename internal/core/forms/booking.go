package forms

import (
	"strings"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type BookingForm struct {
	PackageID     string `json:"paqueteId" validate:"required"`
	TravelDate    string `json:"fechaViaje" validate:"required,date"`
	People        int    `json:"cantidadPersonas" validate:"required,gte=1,lte=20"`
	PaymentMethod string `json:"metodoPago" validate:"required,oneof=tarjeta transferencia deposito"`
	ContactName   string `json:"nombre" validate:"required,min=2,max=100"`
	ContactEmail  string `json:"email" validate:"required,email"`
	ContactPhone  string `json:"telefono" validate:"required,phone"`
	Notes         string `json:"observaciones" validate:"max=500"`
}

// Request assumes the form already passed Validate.
func (f BookingForm) Request(total float64, currency domain.Currency) (ports.CreateReservationRequest, error) {
	date, err := domain.ParseDate(f.TravelDate)
	if err != nil {
		return ports.CreateReservationRequest{}, err
	}

	method, err := domain.ParsePaymentMethod(f.PaymentMethod)
	if err != nil {
		return ports.CreateReservationRequest{}, err
	}

	return ports.CreateReservationRequest{
		PackageID:     f.PackageID,
		TravelDate:    date,
		People:        f.People,
		TotalPrice:    total,
		Currency:      currency,
		PaymentMethod: method,
		Contact: domain.Contact{
			Name:  strings.TrimSpace(f.ContactName),
			Email: strings.ToLower(strings.TrimSpace(f.ContactEmail)),
			Phone: strings.TrimSpace(f.ContactPhone),
		},
		Notes: strings.TrimSpace(f.Notes),
	}, nil
}

type SubscriberForm struct {
	FirstName string `json:"nombre" validate:"required,min=2,max=50"`
	LastName  string `json:"apellido" validate:"required,min=2,max=50"`
	Country   string `json:"pais" validate:"required,max=60"`
	City      string `json:"ciudad" validate:"required,max=60"`
	Email     string `json:"email" validate:"required,email"`
}

func (f SubscriberForm) Request() ports.SubscriberInput {
	return ports.SubscriberInput{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Country:   strings.TrimSpace(f.Country),
		City:      strings.TrimSpace(f.City),
		Email:     strings.ToLower(strings.TrimSpace(f.Email)),
	}
}

type PackageForm struct {
	Name           string   `json:"nombre" validate:"required,min=3,max=120"`
	Destination    string   `json:"destino" validate:"required,min=2,max=120"`
	Price          float64  `json:"precio" validate:"gte=0"`
	Currency       string   `json:"moneda" validate:"required,currency"`
	PreviousPrice  *float64 `json:"precioAnterior" validate:"omitempty,gte=0"`
	Duration       string   `json:"duracion" validate:"required,max=60"`
	Images         []string `json:"imagenes" validate:"dive,url"`
	Description    string   `json:"descripcion" validate:"max=2000"`
	Category       string   `json:"categoria" validate:"max=40"`
	Featured       bool     `json:"destacado"`
	Active         bool     `json:"activo"`
	AvailableSlots int      `json:"cuposDisponibles" validate:"gte=0"`
}

// Input resolves the category from the destination when the admin left it
// empty or generic.
func (f PackageForm) Input() ports.PackageInput {
	currency, _ := domain.ParseCurrency(f.Currency)

	return ports.PackageInput{
		Name:           strings.TrimSpace(f.Name),
		Destination:    strings.TrimSpace(f.Destination),
		Price:          f.Price,
		Currency:       currency,
		PreviousPrice:  f.PreviousPrice,
		Duration:       strings.TrimSpace(f.Duration),
		Images:         f.Images,
		Description:    strings.TrimSpace(f.Description),
		Category:       domain.Classify(f.Destination, f.Category),
		Featured:       f.Featured,
		Active:         f.Active,
		AvailableSlots: f.AvailableSlots,
	}
}

// Update sends every field, so an edit always overwrites the whole record.
func (f SubscriberForm) Update() ports.UpdateSubscriberRequest {
	in := f.Request()

	return ports.UpdateSubscriberRequest{
		FirstName: &in.FirstName,
		LastName:  &in.LastName,
		Country:   &in.Country,
		City:      &in.City,
		Email:     &in.Email,
	}
}
