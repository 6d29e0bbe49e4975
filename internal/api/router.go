package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mateusmlo/daily-diet-be/internal/api/handlers"
	"github.com/mateusmlo/daily-diet-be/internal/metrics"
	"github.com/mateusmlo/daily-diet-be/internal/services"
	"github.com/mateusmlo/daily-diet-be/internal/session"
)

// RouterOptions carries the environment-dependent router settings.
type RouterOptions struct {
	CORSOrigin   string
	SecureCookie bool
}

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, mealService services.MealServiceProvider, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.RequestCounter)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, opts.SecureCookie)
	mealHandler := handlers.NewMealHandler(mealService)

	// Ops endpoints, outside the session scope
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", metrics.Handler())

	// Registration is the only anonymous endpoint
	r.Post("/users", userHandler.Register)

	// Every meal route requires a resolvable session
	r.Route("/meals", func(r chi.Router) {
		r.Use(session.Middleware(userService))

		r.Post("/", mealHandler.Create)
		r.Get("/", mealHandler.GetAll)
		r.Get("/summary", mealHandler.Summary)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", mealHandler.Get)
			r.Put("/", mealHandler.Update)
			r.Delete("/", mealHandler.Delete)
		})
	})

	return r
}
