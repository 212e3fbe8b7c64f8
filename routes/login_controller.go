package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/UmasivanKanthavel/shield-resume-server/app"
	"github.com/UmasivanKanthavel/shield-resume-server/auth"
	"github.com/UmasivanKanthavel/shield-resume-server/httpx"
	"github.com/UmasivanKanthavel/shield-resume-server/log"
	"github.com/UmasivanKanthavel/shield-resume-server/model"
	"github.com/UmasivanKanthavel/shield-resume-server/routes/middlewares"
)

const loginFailedPage = "/FailedLogin.html"

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login verifies form credentials, sets the session cookie, and redirects
// to the role-specific landing page. Bad credentials redirect to the
// failure page without a cookie.
func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := loginForm{}
		if err := render.DecodeForm(r.Body, &form); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "login.parse_form")
			return
		}

		token, acct, err := app.Access.Login(r.Context(), form.Username, form.Password)
		switch {
		case errors.Is(err, auth.ErrBadCredentials):
			log.Debugf("login.failed: %s", form.Username)
			http.Redirect(w, r, loginFailedPage, http.StatusSeeOther)
			return
		case err != nil:
			httpx.LogInternalError(w, "login.session", err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		dest := "/employee/index.html"
		if acct.Access == model.RoleAdmin {
			dest = "/admin/index.html"
		}
		http.Redirect(w, r, dest, http.StatusSeeOther)
	}
}
