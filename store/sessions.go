package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/UmasivanKanthavel/shield-resume-server/log"
	"github.com/UmasivanKanthavel/shield-resume-server/model"
)

// SessionStore persists login sessions as opaque tokens with an absolute
// expiration. Sessions are never renewed.
type SessionStore struct {
	db  *sql.DB
	ttl time.Duration
}

func NewSessionStore(db *sql.DB, ttl time.Duration) *SessionStore {
	return &SessionStore{db: db, ttl: ttl}
}

// Issue creates a session for username and returns its token. Tokens are
// v4 UUIDs, drawn from crypto/rand.
func (s *SessionStore) Issue(ctx context.Context, username string) (string, error) {
	sid := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (sessionid, username, expiration)
		VALUES (?, ?, ?)`,
		sid,
		username,
		time.Now().Add(s.ttl),
	)
	if err != nil {
		return "", err
	}
	return sid, nil
}

// Lookup resolves a token to its session. Unknown tokens and sessions past
// their expiration both yield nil; expired rows are pruned on the way out.
func (s *SessionStore) Lookup(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, nil
	}

	sess := model.Session{ID: token}
	err := s.db.QueryRowContext(ctx, `
		SELECT username, expiration
		FROM sessions
		WHERE sessionid = ?`,
		token,
	).Scan(&sess.Username, &sess.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !sess.ExpiresAt.After(time.Now()) {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE sessionid = ?`, token); err != nil {
			log.Warnf("session.prune: %s", err)
		}
		return nil, nil
	}
	return &sess, nil
}
