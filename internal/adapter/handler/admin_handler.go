package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/travel_agency/internal/adapter/storage"
	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/services"
)

func (h *Handler) adminService(c *gin.Context) *services.AdminService {
	return services.NewAdminService(sessionFrom(c), backendFrom(c), h.images, h.log)
}

func (h *Handler) Dashboard(c *gin.Context) {
	q := ports.ReservationQuery{ListQuery: listQuery(c), UserID: c.Query("usuarioId")}

	if raw := c.Query("estado"); raw != "" {
		status, err := domain.ParseBookingStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		q.Status = status
	}

	dash, err := h.adminService(c).Dashboard(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

func (h *Handler) AdminGetBooking(c *gin.Context) {
	booking, err := h.adminService(c).Booking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	change, err := h.adminService(c).ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, change)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req cancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badJSON(c)
			return
		}
	}

	change, err := h.adminService(c).CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, change)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	change, err := h.adminService(c).DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, change)
}

func (h *Handler) BookingPayment(c *gin.Context) {
	payment, err := h.adminService(c).BookingPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.adminService(c).Payments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pagos": payments})
}

func (h *Handler) AdminListPackages(c *gin.Context) {
	display, err := displayCurrency(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	q := ports.PackageQuery{ListQuery: listQuery(c), Category: c.Query("categoria"), Search: c.Query("q")}

	views, pagination, err := h.adminService(c).Packages(c.Request.Context(), q, display)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paquetes": views, "pagination": pagination})
}

func (h *Handler) CreatePackage(c *gin.Context) {
	h.savePackage(c, "", http.StatusCreated)
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	h.savePackage(c, c.Param("id"), http.StatusOK)
}

func (h *Handler) savePackage(c *gin.Context, id string, status int) {
	var form forms.PackageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	pkg, err := h.adminService(c).SavePackage(c.Request.Context(), id, form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(status, pkg)
}

func (h *Handler) DeletePackage(c *gin.Context) {
	if err := h.adminService(c).DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		h.respondError(c, storage.ErrTooLarge)
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}

	url, err := h.adminService(c).UploadImage(c.Request.Context(), file.Filename, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

type deleteImageRequest struct {
	URL string `json:"url"`
}

func (h *Handler) DeleteImage(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		badJSON(c)
		return
	}

	if err := h.adminService(c).DeleteImage(c.Request.Context(), req.URL); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListSubscribers(c *gin.Context) {
	subs, err := h.adminService(c).Subscribers(c.Request.Context(), listQuery(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *Handler) SubscriberStats(c *gin.Context) {
	stats, err := h.adminService(c).SubscriberStats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) UpdateSubscriber(c *gin.Context) {
	var form forms.SubscriberForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	sub, err := h.adminService(c).UpdateSubscriber(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *Handler) ToggleSubscriber(c *gin.Context) {
	sub, err := h.adminService(c).ToggleSubscriber(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *Handler) DeleteSubscriber(c *gin.Context) {
	if err := h.adminService(c).DeleteSubscriber(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.adminService(c).Users(c.Request.Context(), listQuery(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var form forms.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	user, err := h.adminService(c).UpdateUser(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	err := h.adminService(c).DeleteUser(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "No podés eliminar tu propia cuenta"})
		return
	}

	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
