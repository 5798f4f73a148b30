package apihttp

import (
	"net/http"

	"github.com/example/primesum/internal/handlers"
	"github.com/example/primesum/internal/rate"
	"github.com/example/primesum/internal/store"
	"github.com/example/primesum/pkg/jsonutil"
	"github.com/go-chi/chi/v5"
)

// Deps are the handlers and shared services mounted by NewRouter.
// Store may be nil when run history is disabled.
type Deps struct {
	Primes  *handlers.PrimesHandler
	TwoSum  *handlers.TwoSumHandler
	Runs    *handlers.RunsHandler
	Limiter *rate.ClientLimiter
	Store   store.Recorder
	// TrustProxy honours X-Forwarded-For when identifying clients.
	TrustProxy bool
}

// NewRouter wires routes and middlewares.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(d.TrustProxy))
	r.Use(CORS)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if d.Store != nil {
			if err := d.Store.Ping(r.Context()); err != nil {
				jsonutil.JSON(w, http.StatusInternalServerError, map[string]string{"status": "unhealthy"})
				return
			}
		}
		jsonutil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(RateLimit(d.Limiter, d.TrustProxy))
		api.Get("/primes", d.Primes.ServeHTTP)
		api.Post("/two-sum", d.TwoSum.ServeHTTP)
		api.Get("/runs", d.Runs.ServeHTTP)
	})

	return r
}
