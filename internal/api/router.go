package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/energy-tracker/docs"
	"github.com/blaisecz/energy-tracker/internal/api/handler"
	"github.com/blaisecz/energy-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler     *handler.UserHandler
	seriesHandler   *handler.SeriesHandler
	targetHandler   *handler.TargetHandler
	energyHandler   *handler.EnergyHandler
	checkInHandler  *handler.CheckInHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	seriesHandler *handler.SeriesHandler,
	targetHandler *handler.TargetHandler,
	energyHandler *handler.EnergyHandler,
	checkInHandler *handler.CheckInHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		userHandler:     userHandler,
		seriesHandler:   seriesHandler,
		targetHandler:   targetHandler,
		energyHandler:   energyHandler,
		checkInHandler:  checkInHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Tracing)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)
				r.Patch("/profile", rt.userHandler.UpdateProfile)

				// Daily series
				r.Put("/weights", rt.seriesHandler.UpsertWeight)
				r.Get("/weights", rt.seriesHandler.ListWeights)
				r.Put("/nutrition", rt.seriesHandler.UpsertNutrition)
				r.Get("/nutrition", rt.seriesHandler.ListNutrition)

				// Macro targets
				r.Post("/targets", rt.targetHandler.Create)
				r.Get("/targets/current", rt.targetHandler.Current)

				// Expenditure engine
				r.Route("/energy", func(r chi.Router) {
					r.Get("/tdee", rt.energyHandler.GetTDEE)
					r.Get("/components", rt.energyHandler.GetComponents)
					r.Get("/data-quality", rt.energyHandler.GetDataQuality)
					r.Post("/history", rt.energyHandler.RecordHistory)
					r.Get("/history", rt.energyHandler.ListHistory)

					r.Get("/insights", rt.insightsHandler.GetInsights)
					r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
				})

				// Weekly check-ins
				r.Route("/check-ins", func(r chi.Router) {
					r.Post("/", rt.checkInHandler.Create)
					r.Get("/", rt.checkInHandler.List)
					r.Post("/{checkInId}/confirm", rt.checkInHandler.Confirm)
					r.Post("/{checkInId}/reject", rt.checkInHandler.Reject)
				})
			})
		})
	})

	return r
}
