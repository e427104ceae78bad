package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/roozbehk/tasktrack-be/internal/api/handlers"
	"github.com/roozbehk/tasktrack-be/internal/config"
	"github.com/roozbehk/tasktrack-be/internal/services"
	"github.com/roozbehk/tasktrack-be/internal/validation"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, taskService services.TaskServiceProvider, userService services.UserServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack. Recoverer turns any handler panic into a
	// 500 with the detail logged, never sent to the client.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	rules := validation.ForLocale(cfg.MessagesLocale)
	taskHandler := handlers.NewTaskHandler(taskService, userService, rules)
	userHandler := handlers.NewUserHandler(userService, rules)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.GetAll)
			r.Post("/", taskHandler.Create)
			r.Get("/user/{userId}", taskHandler.GetByUser)
			r.Put("/toggle/{id}", taskHandler.Toggle)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.Get)
				r.Put("/", taskHandler.Update)
				r.Delete("/", taskHandler.Delete)
			})
		})

		r.Post("/user/{username}", userHandler.GetOrCreate)
	})

	return r
}
