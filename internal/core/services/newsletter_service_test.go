package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/ports/mocks"
	"github.com/srgjo27/travel_agency/internal/core/services"
)

func TestNewsletterSubscribe(t *testing.T) {
	gw := mocks.NewSubscriberGateway(t)
	svc := services.NewNewsletterService(gw)

	gw.On("CreateSubscriber", ctx, ports.SubscriberInput{
		FirstName: "Ana",
		LastName:  "Pérez",
		Country:   "Argentina",
		City:      "Rosario",
		Email:     "ana@example.com",
	}).Return(&domain.Subscriber{ID: "s1", Active: true}, nil)

	sub, err := svc.Subscribe(ctx, forms.SubscriberForm{
		FirstName: "Ana",
		LastName:  "Pérez",
		Country:   "Argentina",
		City:      "Rosario",
		Email:     "Ana@Example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "s1", sub.ID)
}

func TestNewsletterSubscribe_Invalid(t *testing.T) {
	svc := services.NewNewsletterService(mocks.NewSubscriberGateway(t))

	_, err := svc.Subscribe(ctx, forms.SubscriberForm{Email: "x"})

	var fe forms.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "nombre")
	assert.Contains(t, fe, "email")
}
