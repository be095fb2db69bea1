package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rolodexhq/rolodex-backend/api/controllers"
	"github.com/rolodexhq/rolodex-backend/api/middleware"
	"github.com/rolodexhq/rolodex-backend/internal/auth"
	"github.com/rolodexhq/rolodex-backend/internal/contacts"
	"github.com/rolodexhq/rolodex-backend/pkg/config"
	"github.com/rolodexhq/rolodex-backend/pkg/db"
	"github.com/rolodexhq/rolodex-backend/pkg/logger"
	"github.com/rolodexhq/rolodex-backend/pkg/metrics"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	AuthService     auth.Service
	ContactsService contacts.Service
	Registry        *prometheus.Registry
}

// NewRouter assembles the full route tree. Registration and login are the
// only business routes outside the identity guard.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(params.Registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(params.DB, logg))
	})

	if params.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(params.AuthService, logg))
		r.Post("/login", controllers.AuthLogin(params.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/profile", controllers.ProfileGet(params.AuthService, logg))
			r.Put("/profile", controllers.ProfileUpdate(params.AuthService, logg))
		})
	})

	r.Route("/api/contacts", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Post("/", controllers.ContactCreate(params.ContactsService, logg))
		r.Get("/", controllers.ContactList(params.ContactsService, logg))
		r.Get("/{contactId}", controllers.ContactGet(params.ContactsService, logg))
		r.Put("/{contactId}", controllers.ContactUpdate(params.ContactsService, logg))
		r.Delete("/{contactId}", controllers.ContactDelete(params.ContactsService, logg))
	})

	return r
}
