package routes

import (
	"errors"
	"net/http"
	"net/url"

	"hello/hello/controllers"
	"hello/hello/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	notFoundPage      = "<h1>Not Found</h1>"
	internalErrorPage = "<h1>INTERNAL_SERVER_ERROR</h1>"
)

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// pageSuffix returns the decoded wildcard. chi matches on RawPath when the
// URL has one, leaving escapes like %2F in the param.
func pageSuffix(r *http.Request) string {
	suffix := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return suffix
	}
	if decoded, err := url.PathUnescape(suffix); err == nil {
		return decoded
	}
	return suffix
}

// StaticRoutes serves every remaining GET path from the static directory.
func StaticRoutes(r chi.Router, ctrl *controllers.StaticController) {
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		page, err := ctrl.ReadPage(r.Context(), pageSuffix(r))
		switch {
		case err == nil:
			writeHTML(w, http.StatusOK, page)
		case errors.Is(err, controllers.ErrPageNotFound):
			writeHTML(w, http.StatusNotFound, notFoundPage)
		default:
			logging.ErrorLogger.Error("static page read error",
				zap.Error(err),
				zap.String("trace_id", logging.TraceID(r.Context())),
			)
			writeHTML(w, http.StatusInternalServerError, internalErrorPage)
		}
	})
}
