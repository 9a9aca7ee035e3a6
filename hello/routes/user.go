package routes

import (
	"bytes"
	"encoding/json"
	"net/http"

	"hello/hello/controllers"
	"hello/hello/types"
	"hello/hello/utils/jsonutils"
	"hello/hello/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			logging.ErrorLogger.Error("response encode error", zap.Error(err), zap.String("trace_id", logging.TraceID(r.Context())))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	}
}

func UserRoutes(r chi.Router, ctrl *controllers.UserController) {
	r.Post("/users", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CreateUserRequest
		if err := jsonutils.DecodeBody(r, &req, "username"); err != nil {
			return nil, jsonutils.StatusOf(err, http.StatusBadRequest), err
		}
		return ctrl.CreateUser(r.Context(), req), http.StatusCreated, nil
	}))
	r.Get("/users", methodNotAllowed(http.MethodPost))
}
