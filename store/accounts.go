package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/UmasivanKanthavel/shield-resume-server/model"
)

// AccountStore persists accounts keyed by username. The password hash is
// opaque here; hashing and verification live with the caller.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// Upsert replaces any existing row for the same username. Re-registration
// overwriting a role is an administrative capability, last write wins.
func (s *AccountStore) Upsert(ctx context.Context, acct model.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO accounts (username, password, access, ShieldID, name)
		VALUES (?, ?, ?, ?, ?)`,
		acct.Username,
		acct.PasswordHash,
		acct.Access,
		acct.ShieldID,
		acct.Name,
	)
	return err
}

// Get returns the account for username, or nil when there is none.
func (s *AccountStore) Get(ctx context.Context, username string) (*model.Account, error) {
	acct := model.Account{}
	err := s.db.QueryRowContext(ctx, `
		SELECT username, password, access, ShieldID, name
		FROM accounts
		WHERE username = ?`,
		username,
	).Scan(&acct.Username, &acct.PasswordHash, &acct.Access, &acct.ShieldID, &acct.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}
