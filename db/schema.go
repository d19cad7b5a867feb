// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the calendar_day table for the given database
// type ("postgres" or "sqlite"). Safe to call multiple times - uses
// IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	ddl := postgresSchema
	if databaseType == "sqlite" {
		ddl = sqliteSchema
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Dates are stored as ISO text so range scans stay ordered and the
// same queries run on both engines.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS calendar_day (
    id SERIAL PRIMARY KEY,
    date TEXT NOT NULL UNIQUE,
    type_id INTEGER NOT NULL CHECK (type_id BETWEEN 1 AND 3),
    type_text TEXT NOT NULL,
    note TEXT,
    week_day TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calendar_day_date ON calendar_day(date);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS calendar_day (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL UNIQUE,
    type_id INTEGER NOT NULL CHECK (type_id BETWEEN 1 AND 3),
    type_text TEXT NOT NULL,
    note TEXT,
    week_day TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calendar_day_date ON calendar_day(date);
`
