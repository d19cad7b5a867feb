// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/mlebedev/calendar-api/calendar"
	"github.com/mlebedev/calendar-api/cliparse"
	"github.com/mlebedev/calendar-api/middleware"
	"github.com/mlebedev/calendar-api/models"
	"github.com/mlebedev/calendar-api/store"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

type PeriodHandler struct {
	store *store.DayStore
	cfg   cliparse.Config
}

func NewPeriodHandler(db *sql.DB, cfg cliparse.Config) *PeriodHandler {
	return &PeriodHandler{store: store.New(db), cfg: cfg}
}

// GetByPeriod handles GET /period/{period}
//
// The pipeline: resolve the period expression, synthesize the default
// calendar, overlay stored overrides, then format. Statistics are
// computed on the merged set before any compact filtering.
func (h *PeriodHandler) GetByPeriod(w http.ResponseWriter, r *http.Request) {
	var q models.PeriodQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	if !models.ValidWeekType(q.WeekType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "week_type must be 5 or 6")
		return
	}

	period, err := calendar.ResolvePeriod(r.PathValue("period"))
	if errors.Is(err, calendar.ErrInvalidPeriod) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to resolve period")
		return
	}

	base := calendar.BaseDays(period.Start, period.End, q.WeekType)

	stored, err := h.store.GetRange(period.Start, period.End)
	if err != nil {
		slog.Error("failed to load overrides", "period", r.PathValue("period"), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	merged := calendar.Merge(base, stored)

	resp := models.PeriodResponse{
		DateStart:    period.Start.Format("02.01.2006"),
		DateEnd:      period.End.Format("02.01.2006"),
		WorkWeekType: models.WorkWeekLabel(q.WeekType),
		Period:       period.Label,
		Days:         calendar.Present(merged, q.Compact, q.WeekType),
	}
	if q.Statistic {
		stat := calendar.Statistic(merged)
		resp.Statistic = &stat
	}

	slog.Info("period assembled",
		"period", r.PathValue("period"),
		"label", period.Label,
		"days", len(merged),
		"overrides", len(stored),
		"compact", q.Compact,
	)
	middleware.JSONResponse(w, http.StatusOK, resp)
}
