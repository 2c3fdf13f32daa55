package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rejectmonitor/internal/handlers"
	"rejectmonitor/internal/handlers/api"
	"rejectmonitor/internal/render"
	"rejectmonitor/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(st *store.Store, renderer *render.Renderer, processes []string) {
	// Initialize handlers
	recordHandler := handlers.NewRecordHandler(st, renderer, processes, s.Cfg)
	apiHandler := api.NewRecordsHandler(st)

	// Page and form actions
	s.App.Get("/", recordHandler.Index)
	s.App.Post("/", recordHandler.Create)
	s.App.Post("/upload", recordHandler.Upload)
	s.App.Post("/delete/:id", recordHandler.Delete)
	s.App.Post("/delete_all", recordHandler.DeleteAll)
	s.App.Get("/download", recordHandler.Download)
	s.App.Get("/chart", recordHandler.Chart)

	// JSON API
	s.App.Get("/api/records", apiHandler.List)
	s.App.Get("/api/summary", apiHandler.Summary)
	s.App.Get("/healthz", apiHandler.Health)

	// Prometheus scrape endpoint
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
