// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Calendar API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - DayHandler: Single day management (create, update, delete)
  - PeriodHandler: Calendar reads over a period expression
  - ImportHandler: Bulk calendar upsert
  - ExternalHandler: Fetching years from external providers

Handlers are created via constructor functions that accept *sql.DB and Config:

	dayHandler := handlers.NewDayHandler(db, cfg)

# Reading a Period

Period expressions resolve to an inclusive date range:

	GET /period/2025           → whole year
	GET /period/Q12025         → first quarter
	GET /period/01.2025        → month
	GET /period/15.01.2025     → single day
	GET /period/a-b            → arbitrary range of two DD.MM.YYYY dates

Query parameters: compact trims the response to exception days only,
week_type picks the 5- or 6-day work week, statistic adds day counts.

# Managing Days

Write endpoints require the bearer token (Authentication header):

	POST /date             → CreateDay (409 if the date exists)
	PUT /date/{date}       → UpdateDay (full replacement)
	DELETE /date/{date}    → DeleteDay
	POST /calendar         → ImportCalendar (upsert many)

# External Calendars

	GET /external/period/{year} → GetYear

Fetches a full year from the primary provider with one fallback, and
with save=true persists the fetched days into the local table.
*/
package handlers
