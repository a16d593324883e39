package storefront

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"CommonStore/internal/catalog"
	"CommonStore/internal/identity"
	"CommonStore/internal/market"
	"CommonStore/internal/session"
	"CommonStore/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Server struct {
	Log      *zap.Logger
	Catalog  *catalog.Store
	Users    *identity.Store
	Market   *market.Store
	Sessions *session.Manager
	Tokens   *session.TokenMaker
}

const (
	maxBodyBytes = 1 << 20
	sessionTTL   = 24 * time.Hour

	loginLimitPerMin    = 5
	registerLimitPerMin = 3
)

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Mount("/", s.Routes())
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.handleReady)

	r.Post("/session", s.handleNewSession)

	r.Get("/items", s.handleListItems)
	r.Get("/items/{name}", s.handleGetItem)
	r.Get("/categories", s.handleListCategories)

	r.Get("/apps", s.handleListApps)
	r.Get("/apps/{id}", s.handleGetApp)
	r.Get("/apps/{id}/reviews", s.handleListReviews)

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, time.Minute)
	registerLimiter := kit.NewIPRateLimiter(registerLimitPerMin, time.Minute)

	r.Group(func(pr chi.Router) {
		pr.Use(session.Require(s.Sessions, s.Tokens))

		pr.Route("/auth", func(ar chi.Router) {
			ar.With(registerLimiter.Middleware).Post("/register", s.handleRegister)
			ar.With(loginLimiter.Middleware).Post("/login", s.handleLogin)
			ar.Post("/logout", s.handleLogout)
			ar.Get("/whoami", s.handleWhoAmI)
		})

		pr.Route("/cart", func(cr chi.Router) {
			cr.Get("/", s.handleGetCart)
			cr.Post("/items", s.handleAddItem)
			cr.Patch("/items/{key}", s.handleAdjustEntry)
			cr.Delete("/items/{key}", s.handleRemoveEntry)
			cr.Post("/apps", s.handleAddApp)
			cr.Post("/checkout", s.handleCheckout)
		})

		pr.With(identity.RequireUser).Post("/apps", s.handleUploadApp)
		pr.With(identity.RequireUser).Post("/apps/{id}/reviews", s.handleAddReview)

		pr.With(identity.RequireAdmin(s.Users)).Get("/admin/users", s.handleAdminUsers)
	})

	return r
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.Catalog.Len() == 0 {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
