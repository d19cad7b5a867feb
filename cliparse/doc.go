// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "postgres" (default) or "sqlite"
  - APIToken: Bearer token for write endpoints (required)
  - CalendarURL: Primary external calendar source URL template
  - FallbackURL: Fallback external calendar source base URL
  - Debug: Enable debug logging

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-token        API token
	-calendar-url Primary calendar source
	-fallback-url Fallback calendar source
	-debug        Debug logging

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	API_TOKEN     → -token
	CALENDAR_URL  → -calendar-url
	FALLBACK_URL  → -fallback-url
	APP_DEBUG     → -debug

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - API_TOKEN must be provided
  - DATABASE_TYPE must be "postgres" or "sqlite"

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
