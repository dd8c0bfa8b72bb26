package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(h *Handler, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(Logger(h.log))

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pages := router.Group("/")
	pages.Use(Timeout(requestTimeout), h.Session())
	{
		pages.GET("/paquetes", h.ListPackages)
		pages.GET("/paquetes/destacados", h.FeaturedPackages)
		pages.GET("/paquetes/:id", h.GetPackage)

		pages.POST("/reservas/cotizacion", h.QuoteBooking)
		pages.POST("/newsletter", h.Subscribe)

		auth := pages.Group("/auth")
		{
			auth.POST("/login", h.Login)
			auth.POST("/register", h.Register)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", RequireAuth(), h.Me)
			auth.POST("/password/forgot", h.ForgotPassword)
			auth.POST("/password/reset", h.ResetPassword)
			auth.POST("/password/change", RequireAuth(), h.ChangePassword)
		}

		customer := pages.Group("/")
		customer.Use(RequireAuth())
		{
			customer.POST("/reservas", h.CreateBooking)
			customer.GET("/mis-reservas", h.MyBookings)
			customer.POST("/reservas/:id/pago", h.PayBooking)
			customer.POST("/reservas/:id/cancelar", h.CancelMyBooking)
		}

		admin := pages.Group("/admin")
		admin.Use(RequireAdmin())
		{
			admin.GET("/dashboard", h.Dashboard)
			admin.GET("/reservas/:id", h.AdminGetBooking)
			admin.POST("/reservas/:id/confirmar", h.ConfirmBooking)
			admin.POST("/reservas/:id/cancelar", h.CancelBooking)
			admin.DELETE("/reservas/:id", h.DeleteBooking)
			admin.GET("/reservas/:id/pago", h.BookingPayment)
			admin.GET("/pagos", h.ListPayments)

			admin.GET("/paquetes", h.AdminListPackages)
			admin.POST("/paquetes", h.CreatePackage)
			admin.PUT("/paquetes/:id", h.UpdatePackage)
			admin.DELETE("/paquetes/:id", h.DeletePackage)
			admin.POST("/imagenes", h.UploadImage)
			admin.DELETE("/imagenes", h.DeleteImage)

			admin.GET("/suscriptores", h.ListSubscribers)
			admin.GET("/suscriptores/estadisticas", h.SubscriberStats)
			admin.PUT("/suscriptores/:id", h.UpdateSubscriber)
			admin.POST("/suscriptores/:id/toggle", h.ToggleSubscriber)
			admin.DELETE("/suscriptores/:id", h.DeleteSubscriber)

			admin.GET("/usuarios", h.ListUsers)
			admin.PUT("/usuarios/:id", h.UpdateUser)
			admin.DELETE("/usuarios/:id", h.DeleteUser)
		}
	}

	return router
}
