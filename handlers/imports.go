// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mlebedev/calendar-api/cliparse"
	"github.com/mlebedev/calendar-api/middleware"
	"github.com/mlebedev/calendar-api/models"
	"github.com/mlebedev/calendar-api/store"
)

type ImportHandler struct {
	store *store.DayStore
	cfg   cliparse.Config
}

func NewImportHandler(db *sql.DB, cfg cliparse.Config) *ImportHandler {
	return &ImportHandler{store: store.New(db), cfg: cfg}
}

// ImportCalendar handles POST /calendar
//
// The body mirrors the period response shape, so a calendar fetched
// from GET /period or GET /external/period can be posted back as-is.
// Every day upserts: existing rows are replaced, not rejected.
func (h *ImportHandler) ImportCalendar(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Days) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "days must not be empty")
		return
	}

	rows := make([]models.StoredDay, 0, len(req.Days))
	for i, day := range req.Days {
		date, err := time.Parse("02.01.2006", day.Date)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("days[%d]: date %q must look like DD.MM.YYYY", i, day.Date))
			return
		}
		if _, ok := models.DayTypes[day.TypeID]; !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("days[%d]: type_id must be between 1 and 3", i))
			return
		}
		if day.Note != nil && len(*day.Note) > models.MaxNoteLength {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("days[%d]: note must be at most %d characters", i, models.MaxNoteLength))
			return
		}
		rows = append(rows, models.NewStoredDay(date, day.TypeID, day.Note))
	}

	count, err := h.store.UpsertMany(rows)
	if err != nil {
		slog.Error("failed to import calendar", "days", len(rows), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import calendar")
		return
	}

	slog.Info("calendar imported", "days", count)
	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{Inserted: count})
}
