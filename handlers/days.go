// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mlebedev/calendar-api/cliparse"
	"github.com/mlebedev/calendar-api/middleware"
	"github.com/mlebedev/calendar-api/models"
	"github.com/mlebedev/calendar-api/store"
)

type DayHandler struct {
	store *store.DayStore
	cfg   cliparse.Config
}

func NewDayHandler(db *sql.DB, cfg cliparse.Config) *DayHandler {
	return &DayHandler{store: store.New(db), cfg: cfg}
}

// parseDayRequest reads and validates the shared body/query shape of
// the create and update endpoints. type_text and week_day are derived
// later, never read from the request.
func parseDayRequest(r *http.Request) (models.DayRequest, *string, error) {
	var req models.DayRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		return req, nil, errors.New("Invalid JSON")
	}
	if req.Date.IsZero() {
		return req, nil, errors.New("date is required (YYYY-MM-DD)")
	}
	if _, ok := models.DayTypes[req.TypeID]; !ok {
		return req, nil, errors.New("type_id must be between 1 and 3")
	}

	var note *string
	if r.URL.Query().Has("note") {
		value := r.URL.Query().Get("note")
		if len(value) > models.MaxNoteLength {
			return req, nil, fmt.Errorf("note must be at most %d characters", models.MaxNoteLength)
		}
		note = &value
	}
	return req, note, nil
}

// CreateDay handles POST /date
func (h *DayHandler) CreateDay(w http.ResponseWriter, r *http.Request) {
	req, note, err := parseDayRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	day := models.NewStoredDay(req.Date.Time, req.TypeID, note)
	created, err := h.store.Create(day)
	if errors.Is(err, store.ErrConflict) {
		middleware.ErrorResponse(w, http.StatusConflict, "Calendar day already exists for this date")
		return
	}
	if err != nil {
		slog.Error("failed to create calendar day", "date", req.Date.Format("2006-01-02"), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create calendar day")
		return
	}

	slog.Info("calendar day created", "date", req.Date.Format("2006-01-02"), "type_id", created.TypeID)
	middleware.JSONResponse(w, http.StatusCreated, created)
}

// UpdateDay handles PUT /date/{date}
//
// The path date keys the row; the body carries the replacement fields,
// its own date included. A date with no row is a normal outcome.
func (h *DayHandler) UpdateDay(w http.ResponseWriter, r *http.Request) {
	pathDate, err := time.Parse("2006-01-02", r.PathValue("date"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must look like YYYY-MM-DD")
		return
	}

	req, note, err := parseDayRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	day := models.NewStoredDay(req.Date.Time, req.TypeID, note)
	updated, err := h.store.Update(pathDate, day)
	if err != nil {
		slog.Error("failed to update calendar day", "date", r.PathValue("date"), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update calendar day")
		return
	}
	if updated == nil {
		middleware.JSONResponse(w, http.StatusNotFound, models.MessageResponse{
			Message: fmt.Sprintf("Calendar day %s does not exist", r.PathValue("date")),
		})
		return
	}

	slog.Info("calendar day updated", "date", r.PathValue("date"), "type_id", updated.TypeID)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// DeleteDay handles DELETE /date/{date}
func (h *DayHandler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	pathDate, err := time.Parse("2006-01-02", r.PathValue("date"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must look like YYYY-MM-DD")
		return
	}

	deleted, err := h.store.Delete(pathDate)
	if err != nil {
		slog.Error("failed to delete calendar day", "date", r.PathValue("date"), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete calendar day")
		return
	}
	if !deleted {
		middleware.JSONResponse(w, http.StatusNotFound, models.MessageResponse{
			Message: fmt.Sprintf("Calendar day %s does not exist", r.PathValue("date")),
		})
		return
	}

	slog.Info("calendar day deleted", "date", r.PathValue("date"))
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Calendar day %s deleted", r.PathValue("date")),
	})
}
