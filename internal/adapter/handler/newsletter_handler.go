package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/travel_agency/internal/core/forms"
	"github.com/srgjo27/travel_agency/internal/core/services"
)

func (h *Handler) Subscribe(c *gin.Context) {
	var form forms.SubscriberForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c)
		return
	}

	sub, err := services.NewNewsletterService(backendFrom(c)).Subscribe(c.Request.Context(), form)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}
