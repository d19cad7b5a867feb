// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"slices"
	"time"

	"github.com/mlebedev/calendar-api/models"
)

// Day is a single calendar day flowing through the assembly pipeline:
// either synthesized from the week-type rule or carrying a persisted
// override for its date. ID is non-zero only for overrides.
type Day struct {
	Date     time.Time
	TypeID   int
	TypeText string
	Note     *string
	WeekDay  string
	ID       int64
}

// BaseDays synthesizes the default calendar for every date from start
// to end inclusive, ascending. Saturdays and Sundays are weekends under
// a 5-day week, only Sundays under a 6-day week. Holidays are never
// synthesized here, they only ever arrive as overrides.
func BaseDays(start, end time.Time, weekType int) []Day {
	weekend := models.WeekendDays(weekType)
	var days []Day
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		weekDay := models.WeekDayOf(current)
		typeID := models.TypeWorkday
		if slices.Contains(weekend, weekDay) {
			typeID = models.TypeWeekend
		}
		days = append(days, Day{
			Date:     current,
			TypeID:   typeID,
			TypeText: models.DayTypes[typeID],
			WeekDay:  weekDay,
		})
	}
	return days
}

// Merge overlays persisted overrides onto a base calendar. An override
// wholly replaces the base day for its date, type and note included;
// every other base day passes through unchanged. The result keeps the
// length and ordering of base.
func Merge(base []Day, stored []models.StoredDay) []Day {
	byDate := make(map[string]models.StoredDay, len(stored))
	for _, s := range stored {
		byDate[s.Date.Format("2006-01-02")] = s
	}
	merged := make([]Day, 0, len(base))
	for _, day := range base {
		if s, ok := byDate[day.Date.Format("2006-01-02")]; ok {
			merged = append(merged, Day{
				Date:     s.Date.Time,
				TypeID:   s.TypeID,
				TypeText: s.TypeText,
				Note:     s.Note,
				WeekDay:  s.WeekDay,
				ID:       s.ID,
			})
			continue
		}
		merged = append(merged, day)
	}
	return merged
}

// Present renders a merged day list for output: dates become
// DD.MM.YYYY, ids are stripped, absent notes are omitted. With compact
// set only exception days survive: days carrying a note, holidays, and
// days whose declared type contradicts what their weekday implies
// under the week-type rule (moved workdays and moved weekends).
func Present(days []Day, compact bool, weekType int) []models.FormattedDay {
	weekend := models.WeekendDays(weekType)
	formatted := make([]models.FormattedDay, 0, len(days))
	for _, day := range days {
		if compact && !isException(day, weekend) {
			continue
		}
		formatted = append(formatted, models.FormattedDay{
			Date:     day.Date.Format("02.01.2006"),
			TypeID:   day.TypeID,
			TypeText: day.TypeText,
			Note:     day.Note,
			WeekDay:  day.WeekDay,
		})
	}
	return formatted
}

func isException(day Day, weekend []string) bool {
	if day.Note != nil && *day.Note != "" {
		return true
	}
	if day.TypeID == models.TypeHoliday {
		return true
	}
	onWeekend := slices.Contains(weekend, day.WeekDay)
	return (day.TypeID == models.TypeWorkday && onWeekend) ||
		(day.TypeID == models.TypeWeekend && !onWeekend)
}

// Statistic counts a day list by type in a single pass
func Statistic(days []Day) models.Statistic {
	stat := models.Statistic{CalendarDays: len(days)}
	for _, day := range days {
		switch day.TypeID {
		case models.TypeWorkday:
			stat.WorkDays++
		case models.TypeWeekend:
			stat.Weekends++
		case models.TypeHoliday:
			stat.Holidays++
		}
	}
	stat.CalendarDaysWithoutHolidays = stat.CalendarDays - stat.Holidays
	return stat
}
