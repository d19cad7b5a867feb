// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON and query strings:

  - DayRequest: date, type_id
  - PeriodQuery: compact, week_type, statistic
  - ExternalQuery: week_type, statistic, save
  - ImportRequest: date_start, date_end, work_week_type, period, days
  - ImportDay: date, type_id, note

# Response Types

Types for JSON responses:

  - StoredDay: persisted calendar day with id and derived labels
  - FormattedDay: presentation form (DD.MM.YYYY date, no id)
  - PeriodResponse: period envelope with optional statistic and days
  - Statistic: calendar day counts for a period
  - ImportResponse: inserted
  - MessageResponse: message
  - ErrorResponse: error, message

# Constants

Day types:

	TypeWorkday = 1 → "Рабочий день"
	TypeWeekend = 2 → "Выходной день"
	TypeHoliday = 3 → "Государственный праздник"

Work week types:

	FiveDayWeek = 5 (сб and вс are weekends)
	SixDayWeek  = 6 (only вс is a weekend)

Week day labels run Monday first:

	WeekDays = [пн, вт, ср, чт, пт, сб, вс]
*/
package models
