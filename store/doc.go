// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists calendar day overrides in the calendar_day
// table. All queries are portable between PostgreSQL and SQLite.
package store
