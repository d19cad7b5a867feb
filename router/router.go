// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlebedev/calendar-api/cliparse"
	"github.com/mlebedev/calendar-api/external"
	"github.com/mlebedev/calendar-api/handlers"
	"github.com/mlebedev/calendar-api/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dayHandler := handlers.NewDayHandler(db, cfg)
	periodHandler := handlers.NewPeriodHandler(db, cfg)
	importHandler := handlers.NewImportHandler(db, cfg)
	client := external.NewClient(cfg.CalendarURL, cfg.FallbackURL)
	externalHandler := handlers.NewExternalHandler(db, client, cfg)

	// Read endpoints stay public; anything that writes the calendar
	// table requires the bearer token.
	public := func(pattern string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(pattern, h))
	}
	protected := func(pattern string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(pattern, middleware.WithAuth(cfg.APIToken, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Calendar reads
	mux.HandleFunc("GET /period/{period}", public("/period/{period}", periodHandler.GetByPeriod))
	mux.HandleFunc("GET /external/period/{year}", public("/external/period/{year}", externalHandler.GetYear))

	// Calendar day management
	mux.HandleFunc("POST /date", protected("/date", dayHandler.CreateDay))
	mux.HandleFunc("PUT /date/{date}", protected("/date/{date}", dayHandler.UpdateDay))
	mux.HandleFunc("DELETE /date/{date}", protected("/date/{date}", dayHandler.DeleteDay))

	// Bulk import
	mux.HandleFunc("POST /calendar", protected("/calendar", importHandler.ImportCalendar))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Calendar-API is running..."))
	})

	return mux
}
