package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ImageStorage struct {
	mock.Mock
}

func (_m *ImageStorage) Upload(ctx context.Context, folder string, filename string, data []byte) (string, error) {
	ret := _m.Called(ctx, folder, filename, data)

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

func (_m *ImageStorage) Delete(ctx context.Context, publicURL string) error {
	ret := _m.Called(ctx, publicURL)

	return ret.Error(0)
}

func NewImageStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageStorage {
	m := &ImageStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
