// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod reports a period expression that matches no known
// shape, or matches one but carries an impossible date.
var ErrInvalidPeriod = errors.New("invalid period format")

// Period labels
const (
	LabelDay     = "Сутки"
	LabelMonth   = "Месяц"
	LabelQuarter = "Квартал"
	LabelYear    = "Год"
	LabelCustom  = "Произвольный период"
)

// Period is a resolved date range with its human label
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// ResolvePeriod turns a free-form period expression into a concrete
// date range. Shapes are tried in fixed priority order; once a shape
// structurally matches, any further validation failure is a hard error
// rather than a fallthrough to the next shape:
//
//	DD.MM.YYYY-DD.MM.YYYY  custom range (endpoints swapped if reversed)
//	QNYYYY                 quarter, N in 1..4
//	DD.MM.YYYY             single day
//	MM.YYYY                month
//	YYYY                   year
func ResolvePeriod(period string) (Period, error) {
	switch {
	case strings.Contains(period, "-"):
		return resolveRange(period)
	case strings.HasPrefix(period, "Q"):
		return resolveQuarter(period)
	case strings.Count(period, ".") == 2:
		date, err := parseDate(period)
		if err != nil {
			return Period{}, err
		}
		return Period{Start: date, End: date, Label: LabelDay}, nil
	case strings.Count(period, ".") == 1:
		return resolveMonth(period)
	case len(period) == 4 && allDigits(period):
		year, _ := strconv.Atoi(period)
		return Period{
			Start: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC),
			Label: LabelYear,
		}, nil
	}
	return Period{}, fmt.Errorf("%w: unknown shape %q", ErrInvalidPeriod, period)
}

func resolveRange(period string) (Period, error) {
	parts := strings.Split(period, "-")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: range must look like DD.MM.YYYY-DD.MM.YYYY, got %q", ErrInvalidPeriod, period)
	}
	start, err := parseDate(parts[0])
	if err != nil {
		return Period{}, err
	}
	end, err := parseDate(parts[1])
	if err != nil {
		return Period{}, err
	}
	if start.After(end) {
		start, end = end, start
	}
	return Period{Start: start, End: end, Label: LabelCustom}, nil
}

func resolveQuarter(period string) (Period, error) {
	if len(period) != 6 || !allDigits(period[1:]) {
		return Period{}, fmt.Errorf("%w: quarter must look like QNYYYY, got %q", ErrInvalidPeriod, period)
	}
	quarter := int(period[1] - '0')
	if quarter < 1 || quarter > 4 {
		return Period{}, fmt.Errorf("%w: quarter must be 1..4, got %d", ErrInvalidPeriod, quarter)
	}
	year, _ := strconv.Atoi(period[2:])
	startMonth := 3*(quarter-1) + 1
	endMonth := startMonth + 2
	start := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if endMonth == 12 {
		end = time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, time.Month(endMonth+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return Period{Start: start, End: end, Label: LabelQuarter}, nil
}

func resolveMonth(period string) (Period, error) {
	parts := strings.Split(period, ".")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 4 || !allDigits(parts[0]) || !allDigits(parts[1]) {
		return Period{}, fmt.Errorf("%w: month must look like MM.YYYY, got %q", ErrInvalidPeriod, period)
	}
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be 01..12, got %d", ErrInvalidPeriod, month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if month == 12 {
		// TODO: December resolves to a single day (the 1st) instead of
		// the 31st; confirm the intended range with consumers before
		// changing, stored exports were produced with this rule.
		end = time.Date(year, 12, 1, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return Period{Start: start, End: end, Label: LabelMonth}, nil
}

// parseDate parses a DD.MM.YYYY date, rejecting impossible values
// (day 32, month 13) as ErrInvalidPeriod.
func parseDate(s string) (time.Time, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: date must look like DD.MM.YYYY, got %q", ErrInvalidPeriod, s)
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("%w: date components must be numbers, got %q", ErrInvalidPeriod, s)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month out of range in %q", ErrInvalidPeriod, s)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: no such date %q", ErrInvalidPeriod, s)
	}
	return date, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
