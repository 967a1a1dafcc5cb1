package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Shoplinkado/internal/admin"
	"Shoplinkado/internal/catalog"
	"Shoplinkado/pkg/kit"
)

type Deps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const (
	loginLimitPerMin = 5
	loginLimitWindow = time.Minute
)

// NewHandler composes the catalog and admin surfaces into the single
// storefront API.
func NewHandler(cat *catalog.Server, adm *admin.Server, deps Deps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(cat, deps.Log))

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, loginLimitWindow)

	r.Route("/api", func(api chi.Router) {
		api.Get("/categories", cat.ListCategories)
		api.Get("/categories/{slug}", cat.GetCategory)
		api.Get("/categories/{slug}/products", cat.ListCategoryProducts)

		api.Group(func(pr chi.Router) {
			pr.Use(adm.RequireAdmin)
			pr.Get("/products", cat.ListProducts)
			pr.Post("/products", cat.CreateProduct)
			pr.Post("/categories", cat.CreateCategory)
		})

		api.Route("/admin", func(ar chi.Router) {
			ar.With(loginLimiter.Middleware).Post("/login", adm.HandleLogin)
			ar.Get("/check", adm.HandleCheck)
			ar.Post("/logout", adm.HandleLogout)
		})
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps Deps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps Deps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func readyz(cat *catalog.Server, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := cat.Store.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
