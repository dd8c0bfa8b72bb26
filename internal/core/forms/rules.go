package forms

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/srgjo27/travel_agency/internal/core/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{8,20}$`)

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrency(fl.Field().String())
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}
