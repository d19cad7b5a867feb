// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mlebedev/calendar-api/calendar"
	"github.com/mlebedev/calendar-api/cliparse"
	"github.com/mlebedev/calendar-api/external"
	"github.com/mlebedev/calendar-api/middleware"
	"github.com/mlebedev/calendar-api/models"
	"github.com/mlebedev/calendar-api/store"
)

// minExternalYear is the oldest year the external providers publish
const minExternalYear = 2017

type ExternalHandler struct {
	client *external.Client
	store  *store.DayStore
	cfg    cliparse.Config
}

func NewExternalHandler(db *sql.DB, client *external.Client, cfg cliparse.Config) *ExternalHandler {
	return &ExternalHandler{client: client, store: store.New(db), cfg: cfg}
}

// GetYear handles GET /external/period/{year}
//
// Year bounds are checked before any network call, so an out-of-range
// year never burns a request against the fallback source. With
// save=true the fetched year is upserted into the local table.
func (h *ExternalHandler) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "year must be a number")
		return
	}
	if year < minExternalYear || year > time.Now().Year() {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("year must be between %d and %d", minExternalYear, time.Now().Year()))
		return
	}

	var q models.ExternalQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	if !models.ValidWeekType(q.WeekType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "week_type must be 5 or 6")
		return
	}

	days, err := h.client.YearDays(year, q.WeekType)
	if errors.Is(err, external.ErrUnavailable) {
		slog.Error("external calendar fetch failed", "year", year, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "External calendar sources are unavailable")
		return
	}
	if err != nil {
		slog.Error("external calendar fetch failed", "year", year, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch external calendar")
		return
	}

	if q.Save {
		rows := make([]models.StoredDay, 0, len(days))
		for _, day := range days {
			rows = append(rows, models.NewStoredDay(day.Date, day.TypeID, day.Note))
		}
		count, err := h.store.UpsertMany(rows)
		if err != nil {
			slog.Error("failed to persist external calendar", "year", year, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save external calendar")
			return
		}
		slog.Info("external calendar persisted", "year", year, "days", count)
	}

	period, err := calendar.ResolvePeriod(strconv.Itoa(year))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to resolve period")
		return
	}

	resp := models.PeriodResponse{
		DateStart:    period.Start.Format("02.01.2006"),
		DateEnd:      period.End.Format("02.01.2006"),
		WorkWeekType: models.WorkWeekLabel(q.WeekType),
		Period:       period.Label,
		Days:         calendar.Present(days, false, q.WeekType),
	}
	if q.Statistic {
		stat := calendar.Statistic(days)
		resp.Statistic = &stat
	}

	slog.Info("external calendar served", "year", year, "days", len(days), "saved", q.Save)
	middleware.JSONResponse(w, http.StatusOK, resp)
}
