// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mlebedev/calendar-api/models"
)

// ErrConflict reports a create for a date that already has a row
var ErrConflict = errors.New("calendar day already exists")

// DayStore is the keyed date -> override-row repository. Absence is
// data here: lookups return a nil row (or false) with a nil error, and
// errors are reserved for genuine store faults.
type DayStore struct {
	db *sql.DB
}

func New(db *sql.DB) *DayStore {
	return &DayStore{db: db}
}

const dateFormat = "2006-01-02"

// GetRange returns the override rows with start <= date <= end,
// ordered by date. No rows is an empty slice, not an error.
func (s *DayStore) GetRange(start, end time.Time) ([]models.StoredDay, error) {
	rows, err := s.db.Query(`
		SELECT id, date, type_id, type_text, note, week_day
		FROM calendar_day
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`, start.Format(dateFormat), end.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar days: %w", err)
	}
	defer rows.Close()

	days := []models.StoredDay{}
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read calendar days: %w", err)
	}
	return days, nil
}

// GetByDate returns the override row for a date, or nil if none exists
func (s *DayStore) GetByDate(date time.Time) (*models.StoredDay, error) {
	row := s.db.QueryRow(`
		SELECT id, date, type_id, type_text, note, week_day
		FROM calendar_day
		WHERE date = $1
	`, date.Format(dateFormat))

	day, err := scanDay(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// Create inserts a new override row and returns it with its assigned
// id. A row already holding the date yields ErrConflict.
func (s *DayStore) Create(day models.StoredDay) (*models.StoredDay, error) {
	err := s.db.QueryRow(`
		INSERT INTO calendar_day (date, type_id, type_text, note, week_day)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO NOTHING
		RETURNING id
	`, day.Date.Format(dateFormat), day.TypeID, day.TypeText, day.Note, day.WeekDay).Scan(&day.ID)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrConflict, day.Date.Format(dateFormat))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert calendar day: %w", err)
	}
	return &day, nil
}

// Update fully replaces the row keyed by date with the given fields
// (the new date value included) and returns the updated row, or nil if
// no row holds that date.
func (s *DayStore) Update(date time.Time, day models.StoredDay) (*models.StoredDay, error) {
	err := s.db.QueryRow(`
		UPDATE calendar_day
		SET date = $1, type_id = $2, type_text = $3, note = $4, week_day = $5
		WHERE date = $6
		RETURNING id
	`, day.Date.Format(dateFormat), day.TypeID, day.TypeText, day.Note, day.WeekDay,
		date.Format(dateFormat)).Scan(&day.ID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar day: %w", err)
	}
	return &day, nil
}

// Delete removes the row keyed by date. Returns true iff a row
// existed and was removed.
func (s *DayStore) Delete(date time.Time) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM calendar_day WHERE date = $1`, date.Format(dateFormat))
	if err != nil {
		return false, fmt.Errorf("failed to delete calendar day: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// UpsertMany inserts the rows in one transaction, replacing type, text,
// note and week_day on a date conflict. Returns the number of rows
// inserted or updated; a failure mid-way rolls the whole batch back.
func (s *DayStore) UpsertMany(days []models.StoredDay) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO calendar_day (date, type_id, type_text, note, week_day)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET
			type_id = excluded.type_id,
			type_text = excluded.type_text,
			note = excluded.note,
			week_day = excluded.week_day
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, day := range days {
		if _, err := stmt.Exec(day.Date.Format(dateFormat), day.TypeID, day.TypeText, day.Note, day.WeekDay); err != nil {
			return 0, fmt.Errorf("failed to upsert day %s: %w", day.Date.Format(dateFormat), err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit upsert: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDay(row scanner) (models.StoredDay, error) {
	var day models.StoredDay
	var dateStr string
	if err := row.Scan(&day.ID, &dateStr, &day.TypeID, &day.TypeText, &day.Note, &day.WeekDay); err != nil {
		if err == sql.ErrNoRows {
			return day, err
		}
		return day, fmt.Errorf("failed to scan calendar day: %w", err)
	}
	date, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		return day, fmt.Errorf("malformed date in store: %w", err)
	}
	day.Date = models.ISODate{Time: date}
	return day, nil
}
