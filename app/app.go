package app

import (
	"database/sql"

	"github.com/UmasivanKanthavel/shield-resume-server/auth"
	"github.com/UmasivanKanthavel/shield-resume-server/config"
	"github.com/UmasivanKanthavel/shield-resume-server/store"
)

// App aggregates the wired components handed to the routes.
type App struct {
	DB          *sql.DB
	Accounts    *store.AccountStore
	Sessions    *store.SessionStore
	Submissions *store.SubmissionStore
	Analyzer    *store.Analyzer
	Access      *auth.AccessController
	config.Config
}
