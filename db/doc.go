// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the given engine:

	if err := db.CreateSchema(conn, "postgres"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema is a single table:

  - calendar_day: one override row per date

Columns: id, date (TEXT, ISO, unique), type_id (1-3), type_text,
note (nullable), week_day. Dates are stored as ISO text so range
queries order correctly on both PostgreSQL and SQLite.

# Indexes

  - calendar_day.date (unique)
*/
package db
