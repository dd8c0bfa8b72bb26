package domain

import "time"

type Subscriber struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Country      string    `json:"pais"`
	City         string    `json:"ciudad"`
	Email        string    `json:"email"`
	Active       bool      `json:"activo"`
	SubscribedAt time.Time `json:"fechaSuscripcion"`
}

func (s *Subscriber) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}

	return s.FirstName + " " + s.LastName
}

type SubscriberStats struct {
	Total     int            `json:"total"`
	Active    int            `json:"activos"`
	Inactive  int            `json:"inactivos"`
	ByCountry map[string]int `json:"porPais"`
}

func ComputeSubscriberStats(subs []Subscriber) SubscriberStats {
	stats := SubscriberStats{
		Total:     len(subs),
		ByCountry: make(map[string]int),
	}

	for _, s := range subs {
		if s.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}

		if s.Country != "" {
			stats.ByCountry[s.Country]++
		}
	}

	return stats
}
