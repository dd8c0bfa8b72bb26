package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	backends       ports.BackendFactory
	sessions       ports.SessionStore
	images         ports.ImageStorage
	cookie         CookieConfig
	maxUploadBytes int64
	log            logrus.FieldLogger
}

type Deps struct {
	Backends       ports.BackendFactory
	Sessions       ports.SessionStore
	Images         ports.ImageStorage
	Cookie         CookieConfig
	MaxUploadBytes int64
	Log            logrus.FieldLogger
}

func New(d Deps) *Handler {
	return &Handler{
		backends:       d.Backends,
		sessions:       d.Sessions,
		images:         d.Images,
		cookie:         d.Cookie,
		maxUploadBytes: d.MaxUploadBytes,
		log:            d.Log,
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, session *domain.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, session.ID, int(h.cookie.TTL.Seconds()), "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func displayCurrency(c *gin.Context) (domain.Currency, error) {
	code := c.Query("moneda")
	if code == "" {
		return domain.BaseCurrency, nil
	}

	return domain.ParseCurrency(code)
}

func listQuery(c *gin.Context) ports.ListQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	return ports.ListQuery{Page: page, Limit: limit}
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
}
