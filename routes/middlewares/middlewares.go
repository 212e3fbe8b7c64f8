package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/UmasivanKanthavel/shield-resume-server/auth"
	"github.com/UmasivanKanthavel/shield-resume-server/httpx"
	"github.com/UmasivanKanthavel/shield-resume-server/log"
	"github.com/UmasivanKanthavel/shield-resume-server/model"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "sessionid"

type contextKey int

const accountKey contextKey = iota

// CookieAuth resolves the session cookie to an account and stores it in
// the request context. Requests without a live session get 401.
func CookieAuth(access *auth.AccessController) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}

			acct, err := access.Authenticate(r.Context(), token)
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				httpx.LogStatusMsg(w, http.StatusUnauthorized, log.DebugLevel, "auth.session", "Login required")
				return
			case err != nil:
				httpx.LogInternalError(w, "auth.session", err)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, acct)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects with 403 unless the authenticated account holds
// exactly the given role. Must run after CookieAuth.
func RequireRole(access *auth.AccessController, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := access.Authorize(Account(r.Context()), role); err != nil {
				httpx.LogStatusMsg(w, http.StatusForbidden, log.DebugLevel, "auth.role", "%ss only", role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Account returns the authenticated account placed by CookieAuth, or nil.
func Account(ctx context.Context) *model.Account {
	acct, _ := ctx.Value(accountKey).(*model.Account)
	return acct
}
