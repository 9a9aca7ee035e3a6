// hello/routes/router.go
package routes

import (
	"net/http"

	"hello/hello/config"
	"hello/hello/controllers"
	"hello/hello/middlewares"
	"hello/hello/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter assembles the application: GET /, POST /users and the static
// catch-all GET /*.
func NewRouter(cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger(logging.RequestLogger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	RootRoutes(r, controllers.NewRootController())
	UserRoutes(r, controllers.NewUserController())
	StaticRoutes(r, controllers.NewStaticController(cfg.StaticDir))
	return r
}
