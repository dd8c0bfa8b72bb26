package storage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/travel_agency/internal/adapter/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 144, B: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newClient(srv *httptest.Server, maxBytes int64, maxDimension int) *storage.Client {
	log, _ := test.NewNullLogger()

	return storage.NewClient(storage.Config{
		URL:          srv.URL,
		ServiceKey:   "service-key",
		Bucket:       "imagenes",
		MaxBytes:     maxBytes,
		MaxDimension: maxDimension,
	}, storage.WithHTTPClient(srv.Client()), storage.WithLogger(log))
}

func TestUpload_DownscalesAndReturnsPublicURL(t *testing.T) {
	var (
		gotPath string
		gotImg  image.Image
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))

		gotPath = r.URL.Path

		img, err := png.Decode(r.Body)
		assert.NoError(t, err)
		gotImg = img

		_, _ = w.Write([]byte(`{"Key":"imagenes/x"}`))
	}))
	defer srv.Close()

	client := newClient(srv, 0, 500)

	publicURL, err := client.Upload(context.Background(), "paquetes", "foto.txt", pngBytes(t, 1000, 400))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/imagenes/paquetes/"), gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ".png"), gotPath)

	require.NotNil(t, gotImg)
	assert.Equal(t, 500, gotImg.Bounds().Dx())
	assert.Equal(t, 200, gotImg.Bounds().Dy())

	objectPath := strings.TrimPrefix(gotPath, "/storage/v1/object/imagenes/")
	assert.Equal(t, srv.URL+"/storage/v1/object/public/imagenes/"+objectPath, publicURL)

	roundTrip, err := client.ObjectPath(publicURL)
	require.NoError(t, err)
	assert.Equal(t, objectPath, roundTrip)
}

func TestUpload_SmallImageUntouched(t *testing.T) {
	original := pngBytes(t, 40, 30)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, original, body)
	}))
	defer srv.Close()

	_, err := newClient(srv, 0, 500).Upload(context.Background(), "paquetes", "a.png", original)

	assert.NoError(t, err)
}

func TestUpload_RejectsNonImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	_, err := newClient(srv, 0, 500).Upload(context.Background(), "paquetes", "foto.png", []byte("hola, esto es texto"))

	assert.ErrorIs(t, err, storage.ErrNotAnImage)
}

func TestUpload_SizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	_, err := newClient(srv, 10, 0).Upload(context.Background(), "paquetes", "foto.png", pngBytes(t, 20, 20))

	assert.ErrorIs(t, err, storage.ErrTooLarge)
}

func TestUpload_StorageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"400","error":"Duplicate","message":"The resource already exists"}`))
	}))
	defer srv.Close()

	_, err := newClient(srv, 0, 0).Upload(context.Background(), "paquetes", "foto.png", pngBytes(t, 10, 10))

	var storageErr *storage.Error
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, http.StatusBadRequest, storageErr.Status)
	assert.Equal(t, "The resource already exists", storageErr.Message)
}

func TestDelete_ReversesPublicURL(t *testing.T) {
	var body struct {
		Prefixes []string `json:"prefixes"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/storage/v1/object/imagenes", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newClient(srv, 0, 0)

	err := client.Delete(context.Background(), client.PublicURL("paquetes/abc.jpg"))

	require.NoError(t, err)
	assert.Equal(t, []string{"paquetes/abc.jpg"}, body.Prefixes)
}

func TestDelete_ForeignURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	client := newClient(srv, 0, 0)

	assert.ErrorIs(t, client.Delete(context.Background(), "https://images.example.com/a.jpg"), storage.ErrForeignURL)
	assert.ErrorIs(t, client.Delete(context.Background(), srv.URL+"/storage/v1/object/public/otro-bucket/a.jpg"), storage.ErrForeignURL)
}
