// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package external

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mlebedev/calendar-api/calendar"
)

// YearJSONSource fetches a whole-year calendar in the xmlcalendar.ru
// JSON format: per month, a compact day list like "1,2+,3*" where a
// plain number or "+" marks a non-working day and "*" a shortened
// pre-holiday workday.
type YearJSONSource struct {
	// URL template with a {year} placeholder
	URL    string
	Client *http.Client
}

type yearJSON struct {
	Year   int `json:"year"`
	Months []struct {
		Month int    `json:"month"`
		Days  string `json:"days"`
	} `json:"months"`
}

func (s *YearJSONSource) Name() string { return "year-json" }

func (s *YearJSONSource) YearDays(year, weekType int) ([]calendar.Day, error) {
	url := strings.ReplaceAll(s.URL, "{year}", strconv.Itoa(year))

	resp, err := s.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch year calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("year calendar returned status %d", resp.StatusCode)
	}

	var data yearJSON
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse year calendar JSON: %w", err)
	}
	if data.Year != 0 && data.Year != year {
		return nil, fmt.Errorf("year calendar is for %d, requested %d", data.Year, year)
	}

	marked, err := parseMarkedDays(data)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	var days []calendar.Day
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		kind := working
		if marker, ok := marked[[2]int{int(current.Month()), current.Day()}]; ok {
			kind = nonWorking
			if marker == '*' {
				kind = preHoliday
			}
		}
		days = append(days, classify(current, kind, weekType))
	}
	return days, nil
}

// parseMarkedDays flattens the per-month day lists into a
// (month, day) -> marker map. The marker is 0 for a plain non-working
// day, '*' for a shortened day, '+' for a transferred day.
func parseMarkedDays(data yearJSON) (map[[2]int]byte, error) {
	marked := make(map[[2]int]byte)
	for _, month := range data.Months {
		if month.Month < 1 || month.Month > 12 {
			return nil, fmt.Errorf("year calendar names month %d", month.Month)
		}
		for _, part := range strings.Split(month.Days, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			var marker byte
			if strings.HasSuffix(part, "*") || strings.HasSuffix(part, "+") {
				marker = part[len(part)-1]
				part = part[:len(part)-1]
			}
			day, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("failed to parse day %q in month %d: %w", part, month.Month, err)
			}
			marked[[2]int{month.Month, day}] = marker
		}
	}
	return marked, nil
}
