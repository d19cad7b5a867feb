// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Calendar API server.

Calendar API serves the Russian production calendar: for any date range
it reports which days are working days, weekends, or state holidays,
with optional statistics and a compact exceptions-only view. Deviations
from the plain weekday/weekend pattern (holidays, transferred workdays,
shortened days) live in a database table and can be managed through the
API or imported in bulk from external calendar providers.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... API_TOKEN=secret go run main.go

Or with flags:

	go run main.go -p 8000 -d "postgres://..." -token secret

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL or SQLite connection string
  - API_TOKEN (-token): Bearer token for write endpoints

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - CALENDAR_URL (-calendar-url): Primary external calendar source
  - FALLBACK_URL (-fallback-url): Fallback external calendar source
  - APP_DEBUG (-debug): Enable debug logging

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (days, periods, imports, external)
  - router: Route definitions using Go 1.22+ routing
  - middleware: auth, CORS, logging, metrics, JSON helpers
  - models: Request/response types and day type labels
  - calendar: Period resolution, base calendar synthesis, statistics
  - store: Calendar day persistence
  - external: xmlcalendar.ru and isdayoff.ru adapters
  - auth: Bearer token verification
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
