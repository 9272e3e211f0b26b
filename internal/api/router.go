package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	r.Handle("/metrics", promhttp.Handler())

	// All API routes live under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Route("/predictions/{disease}", func(r chi.Router) {
			r.Get("/", apiHandler.ListAllHandler)
			r.Get("/history", apiHandler.HistoryHandler)
			r.Get("/history/export", apiHandler.HistoryExportHandler)
			r.Get("/history/stats", apiHandler.HistoryStatsHandler)
		})
		r.Post("/predictions/diabetes", apiHandler.PredictDiabetesHandler)
		r.Post("/predictions/heart", apiHandler.PredictHeartHandler)

		r.Post("/feedback", apiHandler.FeedbackHandler)
	})

	return r
}
