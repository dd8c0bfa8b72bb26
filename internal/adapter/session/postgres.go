package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
)

var _ ports.SessionStore = (*PostgresStore)(nil)

type PostgresStore struct {
	db  *sqlx.DB
	ttl time.Duration
	log logrus.FieldLogger
	now func() time.Time
}

func NewPostgresStore(db *sqlx.DB, ttl time.Duration, log logrus.FieldLogger) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl, log: log, now: time.Now}
}

type sessionRow struct {
	Token     string    `db:"token"`
	UserData  []byte    `db:"user_data"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s *PostgresStore) Save(ctx context.Context, sessionID string, rec domain.SessionRecord) error {
	user, err := json.Marshal(rec.User)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	query := `
	INSERT INTO web_sessions (id, token, user_data, expires_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET token = EXCLUDED.token, user_data = EXCLUDED.user_data, expires_at = EXCLUDED.expires_at
	`

	if _, err := s.db.ExecContext(ctx, query, key(sessionID), rec.Token, user, s.now().Add(s.ttl)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	query := `
	SELECT token, user_data, expires_at
	FROM web_sessions
	WHERE id = $1 AND expires_at > $2
	`

	var row sessionRow
	if err := s.db.GetContext(ctx, &row, query, key(sessionID), s.now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrSessionNotFound
		}

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	rec := domain.SessionRecord{Token: row.Token}
	if err := json.Unmarshal(row.UserData, &rec.User); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}

	return &rec, nil
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = $1`, key(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= $1`, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return res.RowsAffected()
}

// RunCleanup purges expired rows every interval until ctx is done. Redis
// expires keys on its own, so only this store needs it.
func (s *PostgresStore) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.WithField("interval", interval).Info("session cleanup started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("session cleanup stopped")
			return
		case <-ticker.C:
			n, err := s.DeleteExpired(ctx)
			if err != nil {
				s.log.WithError(err).Error("session cleanup failed")
				continue
			}

			if n > 0 {
				s.log.WithField("count", n).Info("expired sessions removed")
			}
		}
	}
}
