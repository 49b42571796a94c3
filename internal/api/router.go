package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joestump/worklog/internal/auth"
	"github.com/joestump/worklog/internal/logger"
	"github.com/joestump/worklog/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps holds all dependencies required to build the router.
type Deps struct {
	BearerAuth  *auth.BearerTokenMiddleware
	RecordStore store.RecordStoreIface
	Logger      *logger.Logger
}

// NewRouter assembles the chi router. The bearer gate is installed on the
// root mux, so it guards every path, unknown ones included.
func NewRouter(deps Deps) chi.Router {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(withTraceID(log))
	r.Use(withLogging)
	r.Use(middleware.Recoverer)
	r.Use(withMetrics)
	r.Use(deps.BearerAuth.Authenticate)

	r.Get("/", index)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/1", func(r chi.Router) {
		r.Use(jsonContentType)
		registerRecordRoutes(r, deps.RecordStore)
	})

	return r
}

// index answers GET / for clients probing the server.
func index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Hello world"))
}
