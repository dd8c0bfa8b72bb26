package ports

import "github.com/srgjo27/travel_agency/internal/core/domain"

type ListQuery struct {
	Page  int
	Limit int
}

type PackageQuery struct {
	ListQuery
	Category string
	Search   string
	Featured *bool
	Active   *bool
}

type PackageInput struct {
	Name           string          `json:"nombre"`
	Destination    string          `json:"destino"`
	Price          float64         `json:"precio"`
	Currency       domain.Currency `json:"moneda"`
	PreviousPrice  *float64        `json:"precioAnterior,omitempty"`
	Duration       string          `json:"duracion"`
	Images         []string        `json:"imagenes"`
	Description    string          `json:"descripcion"`
	Category       domain.Category `json:"categoria"`
	Featured       bool            `json:"destacado"`
	Active         bool            `json:"activo"`
	AvailableSlots int             `json:"cuposDisponibles"`
}

type ReservationQuery struct {
	ListQuery
	Status domain.BookingStatus
	UserID string
}

type CreateReservationRequest struct {
	PackageID     string               `json:"paqueteId"`
	TravelDate    domain.Date          `json:"fechaViaje"`
	People        int                  `json:"cantidadPersonas"`
	TotalPrice    float64              `json:"precioTotal"`
	Currency      domain.Currency      `json:"moneda"`
	PaymentMethod domain.PaymentMethod `json:"metodoPago"`
	Contact       domain.Contact       `json:"datosContacto"`
	Notes         string               `json:"observaciones,omitempty"`
}

type UpdateReservationRequest struct {
	TravelDate    *domain.Date          `json:"fechaViaje,omitempty"`
	People        *int                  `json:"cantidadPersonas,omitempty"`
	TotalPrice    *float64              `json:"precioTotal,omitempty"`
	PaymentMethod *domain.PaymentMethod `json:"metodoPago,omitempty"`
	Contact       *domain.Contact       `json:"datosContacto,omitempty"`
	Notes         *string               `json:"observaciones,omitempty"`
}

type CancelReservationRequest struct {
	Reason string `json:"motivo,omitempty"`
}

type CreatePaymentRequest struct {
	BookingID string                  `json:"reservaId"`
	Method    domain.PaymentMethod    `json:"metodo"`
	Amount    float64                 `json:"monto"`
	Currency  domain.Currency         `json:"moneda"`
	Card      *domain.CardDetails     `json:"tarjeta,omitempty"`
	Transfer  *domain.TransferDetails `json:"transferencia,omitempty"`
	Deposit   *domain.DepositDetails  `json:"deposito,omitempty"`
	Notes     string                  `json:"observaciones,omitempty"`
}

type SubscriberInput struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Country   string `json:"pais"`
	City      string `json:"ciudad"`
	Email     string `json:"email"`
}

type UpdateSubscriberRequest struct {
	FirstName *string `json:"nombre,omitempty"`
	LastName  *string `json:"apellido,omitempty"`
	Country   *string `json:"pais,omitempty"`
	City      *string `json:"ciudad,omitempty"`
	Email     *string `json:"email,omitempty"`
	Active    *bool   `json:"activo,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"usuario"`
}

type UpdateUserRequest struct {
	Username *string      `json:"username,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Role     *domain.Role `json:"rol,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
