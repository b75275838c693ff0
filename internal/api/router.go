package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tradejournal/Trade-Journal-Backend/internal/api/handlers"
	custommiddleware "github.com/tradejournal/Trade-Journal-Backend/internal/api/middleware"
	"github.com/tradejournal/Trade-Journal-Backend/internal/config"
	"github.com/tradejournal/Trade-Journal-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	tradeService *service.TradeService,
	analyticsService *service.AnalyticsService,
	snapshotService *service.SnapshotService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Trade journal namespace
		r.Route("/trade", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(tradeService, snapshotService)
			r.Get("/", tradeHandler.AllTrades)
			r.Post("/", tradeHandler.CreateTrade)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", tradeHandler.GetTrade)
				r.Put("/", tradeHandler.UpdateTrade)
				r.Delete("/", tradeHandler.DeleteTrade)
				r.Get("/brokerage", tradeHandler.GetBrokerageDetail)
			})
		})

		// Analytics namespace
		r.Route("/analytics", func(r chi.Router) {
			analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, snapshotService)
			r.Get("/summary", analyticsHandler.Summary)
			r.Get("/cumulative-pnl", analyticsHandler.CumulativePnL)
			r.Get("/monthly", analyticsHandler.MonthlyPerformance)
			r.Get("/monthly/snapshot", analyticsHandler.MonthlySnapshot)
			r.Post("/monthly/refresh", analyticsHandler.RefreshMonthlySnapshot)
			r.Get("/dashboard", analyticsHandler.Dashboard)
		})
	})

	return r
}
