package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/travel_agency/internal/adapter/api"
	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

var ctx = context.Background()

func newServer(t *testing.T, fn http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(fn)
	t.Cleanup(srv.Close)

	return srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_SendsBearerToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/usuarios/perfil", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":"u1","username":"ana","rol":"admin"}`)
	})

	session := domain.NewSession("s1", domain.User{ID: "u1"}, "tok-1")
	client := api.NewClient(srv.URL, session)

	user, err := client.Profile(ctx)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestClient_AnonymousSendsNoToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"id":"p1","nombre":"Sur","moneda":"ARS"}`)
	})

	pkg, err := api.NewClient(srv.URL, nil).GetPackage(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Sur", pkg.Name)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":"No hay cupos disponibles"}`)
	})

	_, err := api.NewClient(srv.URL, nil).CreateReservation(ctx, ports.CreateReservationRequest{PackageID: "p1"})

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "No hay cupos disponibles", apiErr.Error())
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "<html>down</html>")
	})

	err := api.NewClient(srv.URL, nil).DeletePackage(ctx, "p1")

	require.Error(t, err)
	assert.Equal(t, "HTTP 503: Service Unavailable", err.Error())
}

func TestClient_LogoutInvalidatesSession(t *testing.T) {
	calls := 0
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/usuarios/logout" {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, `{}`)
			return
		}

		assert.Empty(t, r.Header.Get("Authorization"), "token must not outlive logout")
		writeJSON(w, http.StatusOK, `{"data":[],"pagination":{"page":1,"limit":10,"total":0,"pages":0}}`)
	})

	session := domain.NewSession("s1", domain.User{ID: "u1"}, "tok-1")
	client := api.NewClient(srv.URL, session)

	require.NoError(t, client.Logout(ctx))
	assert.False(t, session.Valid())

	_, err := client.ListPackages(ctx, ports.PackageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestClient_ListReservationsQuery(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/reservas", r.URL.Path)
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "confirmada", q.Get("estado"))

		writeJSON(w, http.StatusOK, `{
			"data":[{"id":"r1","estado":"confirmada","fechaViaje":"2026-12-01T00:00:00.000Z","precioTotal":300}],
			"pagination":{"page":2,"limit":20,"total":21,"pages":2}
		}`)
	})

	page, err := api.NewClient(srv.URL, nil).ListReservations(ctx, ports.ReservationQuery{
		ListQuery: ports.ListQuery{Page: 2, Limit: 20},
		Status:    domain.BookingConfirmed,
	})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "2026-12-01", page.Data[0].TravelDate.String())
	assert.False(t, page.Pagination.HasNext())
}

func TestClient_CancelSendsReason(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/reservas/r%2F1/cancelar", r.URL.EscapedPath())

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cambio de planes", body["motivo"])

		writeJSON(w, http.StatusOK, `{"id":"r/1","estado":"cancelada"}`)
	})

	b, err := api.NewClient(srv.URL, nil).CancelReservation(ctx, "r/1", ports.CancelReservationRequest{Reason: "cambio de planes"})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestFactory_BindsSession(t *testing.T) {
	session := domain.NewSession("s1", domain.User{}, "tok")

	backend := api.NewFactory("http://backend.local/api/").ForSession(session)

	client, ok := backend.(*api.Client)
	require.True(t, ok)
	assert.Same(t, session, client.Session())
}
