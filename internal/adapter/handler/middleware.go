package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

const (
	sessionKey = "session"
	backendKey = "backend"
)

func Logger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
			"client_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request processed")
		}
	}
}

// Timeout bounds every backend call a page makes.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Session resolves the session cookie and binds a backend client to it.
// Requests without a usable session continue anonymously.
func (h *Handler) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *domain.Session

		if id, err := c.Cookie(h.cookie.Name); err == nil && id != "" {
			restored, err := state.RestoreSession(c.Request.Context(), h.sessions, id)
			switch {
			case err == nil:
				session = restored
			case errors.Is(err, ports.ErrSessionNotFound):
				h.clearSessionCookie(c)
			default:
				h.log.WithError(err).Warn("failed to restore session")
			}
		}

		c.Set(sessionKey, session)
		c.Set(backendKey, h.backends.ForSession(session))

		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessionFrom(c).Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Iniciá sesión para continuar"})
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)
		if !session.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Iniciá sesión para continuar"})
			return
		}

		if !session.User.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso restringido a administradores"})
			return
		}

		c.Next()
	}
}

func sessionFrom(c *gin.Context) *domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}

	session, _ := v.(*domain.Session)

	return session
}

func backendFrom(c *gin.Context) ports.Backend {
	v, _ := c.Get(backendKey)
	backend, _ := v.(ports.Backend)

	return backend
}
