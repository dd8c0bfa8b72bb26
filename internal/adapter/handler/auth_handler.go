package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/services"
)

func (h *Handler) authService(c *gin.Context) *services.AuthService {
	return services.NewAuthService(backendFrom(c), h.sessions, sessionFrom(c))
}

func (h *Handler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	svc := h.authService(c)

	session, err := svc.Login(c.Request.Context(), form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.startSession(c, svc, session)
}

func (h *Handler) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	svc := h.authService(c)

	session, err := svc.Register(c.Request.Context(), form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.startSession(c, svc, session)
}

// startSession drops the record of the session being replaced, if any,
// before handing out the new cookie.
func (h *Handler) startSession(c *gin.Context, svc *services.AuthService, session *domain.Session) {
	if previous := sessionFrom(c); previous != nil && previous.ID != session.ID {
		if err := h.sessions.Delete(c.Request.Context(), previous.ID); err != nil {
			h.log.WithError(err).Warn("failed to drop replaced session")
		}
	}

	h.setSessionCookie(c, session)

	c.JSON(http.StatusOK, svc.State())
}

// Logout always ends the local session. A backend failure is reported in
// the body but does not keep the user signed in.
func (h *Handler) Logout(c *gin.Context) {
	svc := h.authService(c)
	err := svc.Logout(c.Request.Context())

	h.clearSessionCookie(c)

	body := gin.H{"authenticated": false}
	if err != nil {
		h.log.WithError(err).Warn("logout finished with errors")
		body["error"] = err.Error()
	}

	c.JSON(http.StatusOK, body)
}

func (h *Handler) Me(c *gin.Context) {
	svc := h.authService(c)

	user, err := svc.Me(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "authenticated": true})
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var form forms.ForgotPasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	if err := h.authService(c).ForgotPassword(c.Request.Context(), form); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Si el email existe, te enviamos instrucciones"})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var form forms.ResetPasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	if err := h.authService(c).ResetPassword(c.Request.Context(), form); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var form forms.ChangePasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	if err := h.authService(c).ChangePassword(c.Request.Context(), form); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}
