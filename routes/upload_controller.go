package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/UmasivanKanthavel/shield-resume-server/app"
	"github.com/UmasivanKanthavel/shield-resume-server/httpx"
	"github.com/UmasivanKanthavel/shield-resume-server/log"
	"github.com/UmasivanKanthavel/shield-resume-server/model"
	"github.com/UmasivanKanthavel/shield-resume-server/routes/middlewares"
	"github.com/UmasivanKanthavel/shield-resume-server/validator"
)

type uploadRequest struct {
	Filename     string `json:"filename"`
	FileContents string `json:"filecontents"`
}

// UploadSubmission validates an uploaded resume and upserts it by
// ShieldID. Missing fields are reported before a wrong role is.
func UploadSubmission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct := middlewares.Account(r.Context())

		req := uploadRequest{}
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "upload.parse_body")
			return
		}
		if req.Filename == "" || req.FileContents == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "upload.missing_data", "Missing data")
			return
		}

		if app.Access.Authorize(acct, model.RoleEmployee) != nil {
			httpx.LogStatusMsg(w, http.StatusForbidden, log.DebugLevel, "upload.role", "Not allowed")
			return
		}

		sub, err := validator.Validate(req.Filename, req.FileContents)
		if err != nil {
			var verr *validator.Error
			if errors.As(err, &verr) {
				httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "upload.validate", "%s", verr.Reason)
				return
			}
			httpx.LogInternalError(w, "upload.validate", err)
			return
		}

		if err := app.Submissions.Upsert(r.Context(), sub); err != nil {
			httpx.LogInternalError(w, "db.upsert_submission", err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
