package handler

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/travel_agency/internal/adapter/api"
	"github.com/srgjo27/travel_agency/internal/adapter/storage"
	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

func (h *Handler) respondError(c *gin.Context, err error) {
	var fieldErrs forms.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Revisá los campos marcados", "fields": fieldErrs})
		return
	}

	var backendErr *api.Error
	if errors.As(err, &backendErr) {
		status := backendErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}

		c.JSON(status, forms.Hint(backendErr))
		return
	}

	var storageErr *storage.Error
	if errors.As(err, &storageErr) {
		h.log.WithError(err).Warn("object storage rejected the request")
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo guardar la imagen"})
		return
	}

	status, msg := statusOf(err)
	if status == http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	}

	c.JSON(status, gin.H{"error": msg})
}

func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, ports.ErrSessionNotFound):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrActionNotAllowed),
		errors.Is(err, domain.ErrInvalidBookingStatus):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrPackageNotSelected),
		errors.Is(err, domain.ErrInvalidPartySize),
		errors.Is(err, domain.ErrNoAvailability),
		errors.Is(err, domain.ErrPackageInactive),
		errors.Is(err, domain.ErrUnsupportedCurrency),
		errors.Is(err, domain.ErrInvalidPaymentMethod):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, storage.ErrNotAnImage),
		errors.Is(err, storage.ErrForeignURL):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, storage.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return http.StatusGatewayTimeout, "the backend did not answer in time"
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
