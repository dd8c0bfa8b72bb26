package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports/mocks"
)

type bookingGateway struct {
	*mocks.ReservationGateway
	*mocks.PaymentGateway
}

type backend struct {
	*mocks.PackageGateway
	*mocks.ReservationGateway
	*mocks.PaymentGateway
	*mocks.SubscriberGateway
	*mocks.UserGateway
}

func newBackend(t *testing.T) backend {
	return backend{
		PackageGateway:     mocks.NewPackageGateway(t),
		ReservationGateway: mocks.NewReservationGateway(t),
		PaymentGateway:     mocks.NewPaymentGateway(t),
		SubscriberGateway:  mocks.NewSubscriberGateway(t),
		UserGateway:        mocks.NewUserGateway(t),
	}
}

func customerSession() *domain.Session {
	return domain.NewSession("s1", domain.User{ID: "u1", Username: "ana", Role: domain.RoleCustomer}, "token-1")
}

func adminSession() *domain.Session {
	return domain.NewSession("s2", domain.User{ID: "a1", Username: "root", Role: domain.RoleAdmin}, "token-2")
}

func testLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

func samplePackage() *domain.Package {
	return &domain.Package{
		ID:             "p1",
		Name:           "Bariloche invernal",
		Destination:    "Bariloche, Argentina",
		Price:          1000,
		Currency:       domain.CurrencyARS,
		Duration:       "5 días",
		Active:         true,
		AvailableSlots: 10,
	}
}

var errBackendDown = errors.New("HTTP 503: Service Unavailable")

var ctx = context.Background()
