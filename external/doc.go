// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package external fetches whole-year production calendars from
third-party providers and maps them onto the service's day model.

Two source formats are supported:

  - YearJSONSource: the xmlcalendar.ru JSON format with per-month
    day lists like "1,2+,3*"
  - DayOffSource: the isdayoff.ru bulk API, one digit per day

Client chains a primary source with a single fallback:

	client := external.NewClient(calendarURL, fallbackURL)
	days, err := client.YearDays(2025, models.FiveDayWeek)

When both sources fail the error wraps ErrUnavailable.
*/
package external
