package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

type PackageGateway struct {
	mock.Mock
}

func (_m *PackageGateway) ListPackages(ctx context.Context, q ports.PackageQuery) (*domain.Page[domain.Package], error) {
	ret := _m.Called(ctx, q)

	var r0 *domain.Page[domain.Package]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Page[domain.Package])
	}

	return r0, ret.Error(1)
}

func (_m *PackageGateway) GetPackage(ctx context.Context, id string) (*domain.Package, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Package
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Package)
	}

	return r0, ret.Error(1)
}

func (_m *PackageGateway) CreatePackage(ctx context.Context, in ports.PackageInput) (*domain.Package, error) {
	ret := _m.Called(ctx, in)

	var r0 *domain.Package
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Package)
	}

	return r0, ret.Error(1)
}

func (_m *PackageGateway) UpdatePackage(ctx context.Context, id string, in ports.PackageInput) (*domain.Package, error) {
	ret := _m.Called(ctx, id, in)

	var r0 *domain.Package
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Package)
	}

	return r0, ret.Error(1)
}

func (_m *PackageGateway) DeletePackage(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func NewPackageGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *PackageGateway {
	m := &PackageGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
