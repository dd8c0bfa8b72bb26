package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/services"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

func (h *Handler) ListPackages(c *gin.Context) {
	display, err := displayCurrency(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter := state.Filter{
		Search:       c.Query("q"),
		Currency:     display,
		FeaturedOnly: c.Query("destacados") == "true",
	}

	if category := c.Query("categoria"); category != "" {
		filter.Category = domain.Category(category)
	}

	if filter.MinPrice, err = floatQuery(c, "min"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min price"})
		return
	}

	if filter.MaxPrice, err = floatQuery(c, "max"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max price"})
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))

	view, err := services.NewCatalogService(backendFrom(c), h.log).List(c.Request.Context(), services.CatalogQuery{
		Filter:  filter,
		Display: display,
		Page:    page,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handler) FeaturedPackages(c *gin.Context) {
	display, err := displayCurrency(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	views, err := services.NewCatalogService(backendFrom(c), h.log).Featured(c.Request.Context(), display)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paquetes": views})
}

func (h *Handler) GetPackage(c *gin.Context) {
	display, err := displayCurrency(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	view, err := services.NewCatalogService(backendFrom(c), h.log).Detail(c.Request.Context(), c.Param("id"), display)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func floatQuery(c *gin.Context, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}
