package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/resto-dashboard/docs"
	"github.com/rogerio-castellano/resto-dashboard/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/dashboard", handlers.GetDashboardHandler)
	r.Get("/dashboard/alerts", handlers.GetInventoryAlertsHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(RateLimitMiddleware)
		pr.Post("/password-reset", handlers.RequestPasswordResetHandler)
		pr.Post("/password-reset/confirm", handlers.ConfirmPasswordResetHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())
	return r
}
