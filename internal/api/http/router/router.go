package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/cookie"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/handler"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/middleware"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// Services are the collaborators the HTTP surface dispatches to.
// Federation is optional; Google sign-in routes are mounted only when it is set.
type Services struct {
	Session    middleware.SessionResolver
	Federation handler.FederationService
	Auth       handler.AuthService
	Review     handler.ReviewService
	Prediction handler.PredictionService
	Catalog    model.SpeciesCatalog
	Health     handler.HealthChecker
}

// Options configure the browser-facing behaviour of the router.
type Options struct {
	AllowedOrigins []string
	SecureCookies  bool
	SessionTTL     time.Duration
	FrontendURL    string
}

// Router assembles the HTTP API.
type Router struct {
	services       Services
	opts           Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new Router instance.
func New(services Services, opts Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		opts:           opts,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (r *Router) corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   r.opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

// Register mounts middleware and every route.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Session, r.contextManager, r.logger)
	jar := cookie.NewJar(r.opts.SecureCookies, r.opts.SessionTTL)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(r.corsOptions()))
	mux.Use(chimw.StripSlashes)

	r.registerHealthRoutes(mux)
	r.registerAuthRoutes(mux, authenticate, jar)
	r.registerReviewRoutes(mux, authenticate)
	r.registerPredictionRoutes(mux)

	return mux
}

func (r *Router) registerHealthRoutes(mux chi.Router) {
	health := handler.NewHealth(r.services.Health, r.logger)
	mux.Get("/", health.Root)
	mux.Get("/ping", health.Ping)
	mux.Get("/health", health.Ready)
}

func (r *Router) registerAuthRoutes(mux chi.Router, authenticate *middleware.Authenticate, jar *cookie.Jar) {
	if r.services.Federation != nil {
		federation := handler.NewFederation(r.services.Federation, jar, r.opts.FrontendURL, r.logger)
		mux.Get("/google/login", federation.Login)
		mux.Get("/google/callback", federation.Callback)
	}

	auth := handler.NewAuth(r.services.Auth, r.contextManager, jar, r.opts.FrontendURL, r.logger)
	mux.Get("/logout", auth.Logout)
	mux.Post("/auth/register", auth.Register)
	mux.Post("/auth/login", auth.Login)
	mux.With(authenticate.Require).Get("/me", auth.Me)
}

func (r *Router) registerReviewRoutes(mux chi.Router, authenticate *middleware.Authenticate) {
	review := handler.NewReview(r.services.Review, r.contextManager, r.logger)

	mux.Route("/reviews", func(rr chi.Router) {
		rr.Get("/all/list", review.ListAll)
		rr.Get("/class/{class_name}", review.ListByClass)

		rr.Group(func(pr chi.Router) {
			pr.Use(authenticate.Require)
			pr.Post("/", review.Create)
			pr.Get("/my/list", review.ListMine)
			pr.Put("/{review_id}", review.UpdateContent)
			pr.Put("/{review_id}/location", review.UpdateLocation)
			pr.Delete("/{review_id}", review.Delete)
		})
	})
}

func (r *Router) registerPredictionRoutes(mux chi.Router) {
	prediction := handler.NewPrediction(r.services.Prediction, r.logger)
	species := handler.NewSpecies(r.services.Catalog, r.logger)

	mux.Post("/predict", prediction.Predict)
	mux.Get("/species", species.List)
	mux.Get("/species/{class_name}", species.Get)
}
