package domain

import "math"

type Package struct {
	ID             string   `json:"id"`
	Name           string   `json:"nombre"`
	Destination    string   `json:"destino"`
	Price          float64  `json:"precio"`
	Currency       Currency `json:"moneda"`
	PreviousPrice  *float64 `json:"precioAnterior,omitempty"`
	Duration       string   `json:"duracion"`
	Images         []string `json:"imagenes"`
	Description    string   `json:"descripcion"`
	Category       Category `json:"categoria"`
	Featured       bool     `json:"destacado"`
	Active         bool     `json:"activo"`
	AvailableSlots int      `json:"cuposDisponibles"`
}

// PackageRef is the trimmed package copy embedded in a booking.
type PackageRef struct {
	ID          string   `json:"id"`
	Name        string   `json:"nombre"`
	Destination string   `json:"destino"`
	Price       float64  `json:"precio"`
	Currency    Currency `json:"moneda,omitempty"`
}

func (p *Package) Ref() PackageRef {
	return PackageRef{
		ID:          p.ID,
		Name:        p.Name,
		Destination: p.Destination,
		Price:       p.Price,
		Currency:    p.Currency,
	}
}

// DiscountPercent is display-only; the backend does not enforce it.
func (p *Package) DiscountPercent() int {
	if p.PreviousPrice == nil || *p.PreviousPrice <= p.Price || *p.PreviousPrice <= 0 {
		return 0
	}

	return int(math.Round((*p.PreviousPrice - p.Price) / *p.PreviousPrice * 100))
}

func (p *Package) HasAvailability(people int) bool {
	return p.AvailableSlots >= people
}

func (p *Package) ResolvedCategory() Category {
	return Classify(p.Destination, string(p.Category))
}

func (p *Package) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}
