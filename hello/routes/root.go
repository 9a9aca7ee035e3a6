package routes

import (
	"net/http"

	"hello/hello/controllers"

	"github.com/go-chi/chi/v5"
)

func RootRoutes(r chi.Router, ctrl *controllers.RootController) {
	r.Get("/", ctrl.Greet)
}

// methodNotAllowed answers a known path hit with an unregistered method,
// so the request never falls through to the static catch-all.
func methodNotAllowed(allow string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
