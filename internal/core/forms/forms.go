// Package forms validates user input before any backend call is made.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field (its json name) to a message shown inline.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}

	return "invalid form: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}

		return name
	})

	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("date", validateDate)

	v.RegisterStructValidation(validatePaymentDetails, PaymentForm{})

	return v
}

// Validate returns nil when form is valid, or FieldErrors otherwise.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := make(FieldErrors, len(verrs))
	for _, ve := range verrs {
		field := ve.Field()
		if _, seen := fe[field]; seen {
			continue
		}

		fe[field] = message(ve)
	}

	return fe
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "Este campo es obligatorio"
	case "email":
		return "Ingresá un email válido"
	case "min":
		if fe.Kind() == reflect.String {
			return "Debe tener al menos " + fe.Param() + " caracteres"
		}
		return "Debe ser mayor o igual a " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "Debe ser menor o igual a " + fe.Param()
	case "gte":
		return "Debe ser mayor o igual a " + fe.Param()
	case "gt":
		return "Debe ser mayor a " + fe.Param()
	case "eqfield":
		return "Las contraseñas no coinciden"
	case "nefield":
		return "Debe ser distinta de la actual"
	case "alphanum":
		return "Solo letras y números"
	case "oneof":
		return "Valor no permitido"
	case "phone":
		return "Ingresá un teléfono válido"
	case "currency":
		return "Moneda no soportada"
	case "date":
		return "Fecha inválida (AAAA-MM-DD)"
	case "numeric", "len":
		return "Formato inválido"
	case "credit_card":
		return "Número de tarjeta inválido"
	case "url":
		return "URL inválida"
	default:
		return "Valor inválido"
	}
}
