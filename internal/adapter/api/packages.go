package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

func (c *Client) ListPackages(ctx context.Context, q ports.PackageQuery) (*domain.Page[domain.Package], error) {
	v := listValues(q.ListQuery)
	if q.Category != "" {
		v.Set("categoria", q.Category)
	}

	if q.Search != "" {
		v.Set("q", q.Search)
	}

	if q.Featured != nil {
		v.Set("destacado", strconv.FormatBool(*q.Featured))
	}

	if q.Active != nil {
		v.Set("activo", strconv.FormatBool(*q.Active))
	}

	var page domain.Page[domain.Package]
	if err := c.do(ctx, http.MethodGet, "/paquetes", v, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetPackage(ctx context.Context, id string) (*domain.Package, error) {
	var pkg domain.Package
	if err := c.do(ctx, http.MethodGet, "/paquetes/"+escape(id), nil, nil, &pkg); err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (c *Client) CreatePackage(ctx context.Context, in ports.PackageInput) (*domain.Package, error) {
	var pkg domain.Package
	if err := c.do(ctx, http.MethodPost, "/paquetes", nil, in, &pkg); err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (c *Client) UpdatePackage(ctx context.Context, id string, in ports.PackageInput) (*domain.Package, error) {
	var pkg domain.Package
	if err := c.do(ctx, http.MethodPut, "/paquetes/"+escape(id), nil, in, &pkg); err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (c *Client) DeletePackage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/paquetes/"+escape(id), nil, nil, nil)
}
