// Package auth resolves session cookies to accounts and enforces role
// requirements. Password hashing is delegated to bcrypt; the stores only
// ever see the opaque hash.
package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/UmasivanKanthavel/shield-resume-server/model"
	"github.com/UmasivanKanthavel/shield-resume-server/store"
)

var (
	ErrUnauthenticated = errors.New("login required")
	ErrForbidden       = errors.New("wrong role")
	ErrBadCredentials  = errors.New("invalid credentials")
)

type AccessController struct {
	accounts *store.AccountStore
	sessions *store.SessionStore
}

func NewAccessController(accounts *store.AccountStore, sessions *store.SessionStore) *AccessController {
	return &AccessController{accounts: accounts, sessions: sessions}
}

// Authenticate resolves a session token to its account. A missing,
// unknown, or expired session yields ErrUnauthenticated, as does a session
// whose account has vanished.
func (c *AccessController) Authenticate(ctx context.Context, token string) (*model.Account, error) {
	sess, err := c.sessions.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	acct, err := c.accounts.Get(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrUnauthenticated
	}
	return acct, nil
}

// Authorize checks the account against the required role. The match is
// exact: there is no role hierarchy.
func (c *AccessController) Authorize(acct *model.Account, role string) error {
	if acct == nil {
		return ErrUnauthenticated
	}
	if acct.Access != role {
		return ErrForbidden
	}
	return nil
}

// Login verifies credentials and issues a fresh session. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (c *AccessController) Login(ctx context.Context, username, password string) (string, *model.Account, error) {
	acct, err := c.accounts.Get(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if acct == nil {
		return "", nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := c.sessions.Issue(ctx, username)
	if err != nil {
		return "", nil, err
	}
	return token, acct, nil
}

// HashPassword produces the opaque hash stored on an account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
