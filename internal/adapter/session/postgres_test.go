package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, _ := test.NewNullLogger()

	store := NewPostgresStore(sqlx.NewDb(db, "postgres"), 2*time.Hour, log)
	store.now = func() time.Time { return fixedNow }

	return store, mock
}

func TestPostgresStore_Save(t *testing.T) {
	store, mock := newPostgresStore(t)

	user, err := json.Marshal(domain.User{ID: "u1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO web_sessions").
		WithArgs("travel:session:abc", "tok", user, fixedNow.Add(2*time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Save(context.Background(), "abc", domain.SessionRecord{Token: "tok", User: domain.User{ID: "u1", Role: domain.RoleAdmin}})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Load(t *testing.T) {
	store, mock := newPostgresStore(t)

	rows := sqlmock.NewRows([]string{"token", "user_data", "expires_at"}).
		AddRow("tok", []byte(`{"id":"u1","username":"root","rol":"admin"}`), fixedNow.Add(time.Hour))

	mock.ExpectQuery("SELECT token, user_data, expires_at FROM web_sessions").
		WithArgs("travel:session:abc", fixedNow).
		WillReturnRows(rows)

	rec, err := store.Load(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "tok", rec.Token)
	assert.True(t, rec.User.IsAdmin())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadExpiredOrMissing(t *testing.T) {
	store, mock := newPostgresStore(t)

	mock.ExpectQuery("SELECT token, user_data, expires_at FROM web_sessions").
		WithArgs("travel:session:old", fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_data", "expires_at"}))

	_, err := store.Load(context.Background(), "old")

	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestPostgresStore_DeleteExpired(t *testing.T) {
	store, mock := newPostgresStore(t)

	mock.ExpectExec("DELETE FROM web_sessions WHERE expires_at").
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := store.DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestPostgresStore_RunCleanupStopsWithContext(t *testing.T) {
	store, _ := newPostgresStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		store.RunCleanup(ctx, time.Hour)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop")
	}
}
