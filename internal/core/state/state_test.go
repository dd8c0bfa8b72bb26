package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/core/ports/mocks"
	"github.com/srgjo27/travel_agency/internal/core/state"
)

var ctx = context.Background()

type bookingGateway struct {
	*mocks.ReservationGateway
	*mocks.PaymentGateway
}

func newBookingStore(t *testing.T) (*state.BookingStore, bookingGateway) {
	gw := bookingGateway{
		ReservationGateway: mocks.NewReservationGateway(t),
		PaymentGateway:     mocks.NewPaymentGateway(t),
	}

	return state.NewBookingStore(gw), gw
}

func bookingPage() *domain.Page[domain.Booking] {
	return &domain.Page[domain.Booking]{
		Data: []domain.Booking{
			{ID: "r1", Status: domain.BookingPending, TotalPrice: 100},
			{ID: "r2", Status: domain.BookingConfirmed, TotalPrice: 250},
		},
		Pagination: domain.Pagination{Page: 1, Limit: 10, Total: 2, Pages: 1},
	}
}

func TestBookingStore_FetchAllComputesStats(t *testing.T) {
	store, gw := newBookingStore(t)
	gw.ReservationGateway.On("ListReservations", mock.Anything, ports.ReservationQuery{}).Return(bookingPage(), nil)

	require.NoError(t, store.FetchAll(ctx, ports.ReservationQuery{}))

	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.Len(t, snap.Bookings, 2)
	assert.Equal(t, 2, snap.Stats.TotalBookings)
	assert.Equal(t, 250.0, snap.Stats.TotalRevenue)
	assert.Equal(t, domain.StatsFromClient, snap.StatsSource)
	assert.Equal(t, 2, snap.Pagination.Total)
}

func TestBookingStore_ServerStatsUntilNextMutation(t *testing.T) {
	store, gw := newBookingStore(t)
	gw.ReservationGateway.On("ListReservations", mock.Anything, mock.Anything).Return(bookingPage(), nil)
	gw.ReservationGateway.On("ReservationStats", mock.Anything).Return(&domain.BookingStats{TotalBookings: 40, TotalRevenue: 9000}, nil)
	gw.ReservationGateway.On("ConfirmReservation", mock.Anything, "r1").Return(&domain.Booking{ID: "r1", Status: domain.BookingConfirmed, TotalPrice: 100}, nil)

	require.NoError(t, store.FetchAll(ctx, ports.ReservationQuery{}))

	_, err := store.FetchStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, store.Stats().TotalBookings)
	assert.Equal(t, domain.StatsFromServer, store.Stats().Source)

	_, err = store.Confirm(ctx, "r1")
	require.NoError(t, err)

	stats := store.Stats()
	assert.Equal(t, domain.StatsFromClient, stats.Source)
	assert.Equal(t, 2, stats.ConfirmedBookings)
	assert.Equal(t, 350.0, stats.TotalRevenue)
}

func TestBookingStore_FailureRecordsError(t *testing.T) {
	store, gw := newBookingStore(t)
	gw.ReservationGateway.On("ListReservations", mock.Anything, mock.Anything).Return(bookingPage(), nil).Once()
	gw.ReservationGateway.On("ListReservations", mock.Anything, mock.Anything).Return(nil, errors.New("HTTP 500: Internal Server Error")).Once()

	require.NoError(t, store.FetchAll(ctx, ports.ReservationQuery{}))

	err := store.FetchAll(ctx, ports.ReservationQuery{})
	require.Error(t, err)

	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "HTTP 500: Internal Server Error", snap.Error)
	assert.Len(t, snap.Bookings, 2, "previous data survives a failed reload")
}

func TestBookingStore_CancelledResultIsDiscarded(t *testing.T) {
	store, gw := newBookingStore(t)

	cctx, cancel := context.WithCancel(ctx)
	gw.ReservationGateway.On("ListReservations", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(bookingPage(), nil)

	err := store.FetchAll(cctx, ports.ReservationQuery{})

	assert.ErrorIs(t, err, context.Canceled)

	snap := store.Snapshot()
	assert.Empty(t, snap.Bookings)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.Loading)
}

func TestBookingStore_DeleteRemovesAndRecomputes(t *testing.T) {
	store, gw := newBookingStore(t)
	gw.ReservationGateway.On("ListReservations", mock.Anything, mock.Anything).Return(bookingPage(), nil)
	gw.ReservationGateway.On("GetReservation", mock.Anything, "r2").Return(&bookingPage().Data[1], nil)
	gw.ReservationGateway.On("DeleteReservation", mock.Anything, "r2").Return(nil)

	require.NoError(t, store.FetchAll(ctx, ports.ReservationQuery{}))

	_, err := store.Get(ctx, "r2")
	require.NoError(t, err)
	require.NotNil(t, store.Snapshot().Selected)

	require.NoError(t, store.Delete(ctx, "r2"))

	snap := store.Snapshot()
	assert.Len(t, snap.Bookings, 1)
	assert.Nil(t, snap.Selected)
	assert.Zero(t, snap.Stats.TotalRevenue)
}

func TestBookingStore_PayKeepsLastPayment(t *testing.T) {
	store, gw := newBookingStore(t)
	req := ports.CreatePaymentRequest{BookingID: "r2", Method: domain.PaymentTransfer}
	gw.PaymentGateway.On("CreatePayment", mock.Anything, req).Return(&domain.Payment{ID: "pay1", BookingID: "r2"}, nil)

	_, err := store.Pay(ctx, req)
	require.NoError(t, err)

	require.NotNil(t, store.Snapshot().LastPayment)
	assert.Equal(t, "pay1", store.Snapshot().LastPayment.ID)
}

func TestTask_CancelStopsWork(t *testing.T) {
	task := state.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	task.Cancel()

	assert.ErrorIs(t, task.Wait(), context.Canceled)

	select {
	case <-task.Done():
	default:
		t.Fatal("task should be done")
	}
}

func TestFilterApply(t *testing.T) {
	packages := []domain.Package{
		{ID: "p1", Name: "Riviera", Destination: "Cancún", Price: 2000000, Currency: domain.CurrencyARS, Active: true, Featured: true},
		{ID: "p2", Name: "Sur", Destination: "Bariloche", Price: 500000, Currency: domain.CurrencyARS, Active: true},
		{ID: "p3", Name: "Roma clásica", Destination: "Roma", Price: 1500, Currency: domain.CurrencyEUR, Active: false},
	}

	ids := func(ps []domain.Package) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(state.Filter{}.Apply(packages)))
	assert.Equal(t, []string{"p1", "p2"}, ids(state.Filter{ActiveOnly: true}.Apply(packages)))
	assert.Equal(t, []string{"p1"}, ids(state.Filter{FeaturedOnly: true}.Apply(packages)))
	assert.Equal(t, []string{"p1"}, ids(state.Filter{Category: domain.CategoryCaribe}.Apply(packages)))
	assert.Equal(t, []string{"p3"}, ids(state.Filter{Search: "CLÁSICA"}.Apply(packages)))
	assert.Equal(t, []string{"p2"}, ids(state.Filter{MaxPrice: 600, Currency: domain.CurrencyUSD}.Apply(packages)))
	assert.Equal(t, []string{"p1", "p3"}, ids(state.Filter{MinPrice: 1000000}.Apply(packages)))
}

func TestTravelStore_CreateUpdateDelete(t *testing.T) {
	gw := mocks.NewPackageGateway(t)
	store := state.NewTravelStore(gw)

	in := ports.PackageInput{Name: "Sur"}
	gw.On("CreatePackage", mock.Anything, in).Return(&domain.Package{ID: "p1", Name: "Sur"}, nil)
	gw.On("UpdatePackage", mock.Anything, "p1", in).Return(&domain.Package{ID: "p1", Name: "Sur 2"}, nil)
	gw.On("DeletePackage", mock.Anything, "p1").Return(nil)

	_, err := store.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "p1", store.Snapshot().Selected.ID)

	_, err = store.Update(ctx, "p1", in)
	require.NoError(t, err)
	assert.Equal(t, "Sur 2", store.Snapshot().Packages[0].Name)
	assert.Equal(t, "Sur 2", store.Snapshot().Selected.Name)

	require.NoError(t, store.Delete(ctx, "p1"))
	assert.Empty(t, store.Snapshot().Packages)
	assert.Nil(t, store.Snapshot().Selected)
}

func TestSubscriberStore_ToggleActive(t *testing.T) {
	gw := mocks.NewSubscriberGateway(t)
	store := state.NewSubscriberStore(gw)

	gw.On("ListSubscribers", mock.Anything, ports.ListQuery{}).Return(&domain.Page[domain.Subscriber]{
		Data: []domain.Subscriber{{ID: "s1", Active: true, Country: "Chile"}},
	}, nil)
	gw.On("UpdateSubscriber", mock.Anything, "s1", mock.MatchedBy(func(req ports.UpdateSubscriberRequest) bool {
		return req.Active != nil && !*req.Active
	})).Return(&domain.Subscriber{ID: "s1", Active: false, Country: "Chile"}, nil)

	_, err := store.ToggleActive(ctx, "s1")
	require.Error(t, err, "toggling requires the subscriber to be loaded")

	require.NoError(t, store.Fetch(ctx, ports.ListQuery{}))

	sub, err := store.ToggleActive(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, sub.Active)
	assert.Equal(t, 1, store.Snapshot().Stats.Inactive)
}

func TestAuthStore_LoginPersistsSession(t *testing.T) {
	gw := mocks.NewUserGateway(t)
	sessions := mocks.NewSessionStore(t)

	previous := domain.NewSession("old", domain.User{ID: "u0"}, "old-token")
	store := state.NewAuthStore(gw, sessions, previous)

	user := domain.User{ID: "u1", Username: "ana", Role: domain.RoleCustomer}
	gw.On("Login", mock.Anything, ports.LoginRequest{Username: "ana", Password: "secreto"}).
		Return(&ports.AuthResponse{Token: "tok-1", User: user}, nil)
	sessions.On("Save", mock.Anything, mock.AnythingOfType("string"), domain.SessionRecord{Token: "tok-1", User: user}).Return(nil)

	session, err := store.Login(ctx, ports.LoginRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", session.Token())
	assert.NotEqual(t, "old", session.ID)
	assert.False(t, previous.Valid(), "the replaced session must stop sending its token")

	snap := store.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, "u1", snap.User.ID)
}

func TestAuthStore_LoginFailureKeepsAnonymous(t *testing.T) {
	gw := mocks.NewUserGateway(t)
	sessions := mocks.NewSessionStore(t)
	store := state.NewAuthStore(gw, sessions, nil)

	gw.On("Login", mock.Anything, mock.Anything).Return(nil, errors.New("Credenciales inválidas"))

	_, err := store.Login(ctx, ports.LoginRequest{Username: "ana", Password: "nope"})
	require.Error(t, err)

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Equal(t, "Credenciales inválidas", snap.Error)
}

func TestAuthStore_CancelledLoginDropsStoredSession(t *testing.T) {
	gw := mocks.NewUserGateway(t)
	sessions := mocks.NewSessionStore(t)

	previous := domain.NewSession("old", domain.User{ID: "u0"}, "old-token")
	store := state.NewAuthStore(gw, sessions, previous)

	loginCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var savedID string
	gw.On("Login", mock.Anything, mock.Anything).
		Return(&ports.AuthResponse{Token: "tok-1", User: domain.User{ID: "u1"}}, nil)
	sessions.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedID = args.String(1)
			cancel()
		}).
		Return(nil)
	sessions.On("Delete", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			assert.Equal(t, savedID, args.String(1))
		}).
		Return(nil).Once()

	session, err := store.Login(loginCtx, ports.LoginRequest{Username: "ana", Password: "secreto"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, session)
	assert.NotEmpty(t, savedID)
	assert.True(t, previous.Valid(), "a dropped login must not replace the current session")
	assert.Equal(t, "u0", store.Snapshot().User.ID)
}

func TestAuthStore_LogoutClearsEvenOnBackendFailure(t *testing.T) {
	gw := mocks.NewUserGateway(t)
	sessions := mocks.NewSessionStore(t)

	current := domain.NewSession("s1", domain.User{ID: "u1"}, "tok")
	store := state.NewAuthStore(gw, sessions, current)

	gw.On("Logout", mock.Anything).Return(errors.New("HTTP 502: Bad Gateway"))
	sessions.On("Delete", mock.Anything, "s1").Return(nil)

	err := store.Logout(ctx)
	require.Error(t, err)

	assert.False(t, current.Valid())
	assert.False(t, store.Snapshot().Authenticated)
}

func TestRestoreSession(t *testing.T) {
	sessions := mocks.NewSessionStore(t)
	sessions.On("Load", mock.Anything, "s1").Return(&domain.SessionRecord{Token: "tok", User: domain.User{ID: "u1"}}, nil)
	sessions.On("Load", mock.Anything, "blank").Return(&domain.SessionRecord{}, nil)

	session, err := state.RestoreSession(ctx, sessions, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token())
	assert.Equal(t, "s1", session.ID)

	_, err = state.RestoreSession(ctx, sessions, "blank")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = state.RestoreSession(ctx, sessions, "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestUserStore_UpdateAndDelete(t *testing.T) {
	gw := mocks.NewUserGateway(t)
	store := state.NewUserStore(gw)

	gw.On("ListUsers", mock.Anything, ports.ListQuery{Page: 1}).Return(&domain.Page[domain.User]{
		Data: []domain.User{{ID: "u1", Username: "ana"}, {ID: "u2", Username: "beto"}},
	}, nil)

	role := domain.RoleAdmin
	gw.On("UpdateUser", mock.Anything, "u1", ports.UpdateUserRequest{Role: &role}).Return(&domain.User{ID: "u1", Username: "ana", Role: domain.RoleAdmin}, nil)
	gw.On("DeleteUser", mock.Anything, "u2").Return(nil)

	require.NoError(t, store.Fetch(ctx, ports.ListQuery{Page: 1}))

	_, err := store.Update(ctx, "u1", ports.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "u2"))

	users := store.Snapshot().Users
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
}
