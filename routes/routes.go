package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/UmasivanKanthavel/shield-resume-server/app"
	"github.com/UmasivanKanthavel/shield-resume-server/model"
	"github.com/UmasivanKanthavel/shield-resume-server/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)
	root.MethodNotAllowed(unsupportedMethod)

	root.
		With(middlewares.CookieAuth(app.Access), middlewares.RequireRole(app.Access, model.RoleAdmin)).
		Get("/list", ListSubmissions(app))

	// Deliberately unguarded, matching current production behavior. Whether
	// these need a role guard is a stakeholder decision, not ours to infer.
	root.Get("/admin/analyze", AnalyzePage(app))
	root.Post("/admin/createAcct", CreateAccount(app))

	// Role check for uploads happens in the handler: a body with missing
	// fields is reported before a wrong role is.
	root.
		With(middlewares.CookieAuth(app.Access)).
		Post("/uploadSubmission", UploadSubmission(app))

	root.Post("/login", Login(app))

	root.Mount("/", serveStaticFiles(app.StaticDir))

	return root
}

func serveStaticFiles(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			unsupportedMethod(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

func unsupportedMethod(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Method unsupported", http.StatusNotImplemented)
}
