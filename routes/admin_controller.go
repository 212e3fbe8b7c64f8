package routes

import (
	"html/template"
	"net/http"

	"github.com/go-chi/render"

	"github.com/UmasivanKanthavel/shield-resume-server/app"
	"github.com/UmasivanKanthavel/shield-resume-server/auth"
	"github.com/UmasivanKanthavel/shield-resume-server/httpx"
	"github.com/UmasivanKanthavel/shield-resume-server/log"
	"github.com/UmasivanKanthavel/shield-resume-server/model"
	"github.com/UmasivanKanthavel/shield-resume-server/store"
)

// ListSubmissions returns every stored submission (bounded), flattened to
// the {id, ShieldID, name, q1..q9} shape the admin table consumes.
func ListSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := app.Submissions.ListAll(r.Context(), store.DefaultListLimit)
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}

		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			row := map[string]any{
				"id":       e.ID,
				"ShieldID": e.ShieldID,
				"name":     e.Name,
			}
			for q, answer := range e.Answers {
				row["q"+q] = answer
			}
			out = append(out, row)
		}
		render.JSON(w, r, out)
	}
}

var analyzeTemplate = template.Must(template.New("analyze").Parse(`<!DOCTYPE html>
<html>
<head><title>Analysis</title><link rel="stylesheet" href="/style.css"></head>
<body>
<h1>Submission Analysis</h1>
<p>Total submissions: {{.Count}}</p>
<h2>Shield IDs</h2>
<ul>{{range .ShieldIDList}}<li>{{.}}</li>{{end}}</ul>
<h2>Blank answers per question</h2>
<ol>{{range .BlankQuestions}}<li>{{.}}</li>{{end}}</ol>
</body>
</html>
`))

// AnalyzePage renders the aggregate statistics as a standalone HTML page.
func AnalyzePage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := app.Analyzer.Analyze(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.analyze_submissions", err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := analyzeTemplate.Execute(w, stats); err != nil {
			log.Errorf("analyze.render: %s", err)
		}
	}
}

type createAccountForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Access   string `form:"access"`
	ShieldID string `form:"ShieldID"`
	Name     string `form:"name"`
}

// CreateAccount registers or replaces an account. Any failure is a 500,
// success redirects home.
func CreateAccount(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := createAccountForm{}
		if err := render.DecodeForm(r.Body, &form); err != nil {
			httpx.LogStatusMsg(w, http.StatusInternalServerError, log.DebugLevel, "create_acct.parse_form", "Account creation failed")
			return
		}

		hash, err := auth.HashPassword(form.Password)
		if err != nil {
			httpx.LogInternalError(w, "create_acct.hash", err)
			return
		}

		err = app.Accounts.Upsert(r.Context(), model.Account{
			Username:     form.Username,
			PasswordHash: hash,
			Access:       form.Access,
			ShieldID:     form.ShieldID,
			Name:         form.Name,
		})
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusInternalServerError, log.ErrorLevel, "db.upsert_account", "Account creation failed")
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
