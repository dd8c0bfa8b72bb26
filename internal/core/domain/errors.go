package domain

import "errors"

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	ErrPackageNotSelected = errors.New("no package selected")
	ErrInvalidPartySize   = errors.New("party size must be at least 1")
	ErrNoAvailability     = errors.New("not enough available slots")
	ErrPackageInactive    = errors.New("package is not available for booking")

	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrActionNotAllowed     = errors.New("action not allowed for booking status")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session invalidated")
	ErrForbidden        = errors.New("forbidden operation")
)
