// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package external

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mlebedev/calendar-api/calendar"
)

// DayOffSource fetches a whole year from the isdayoff.ru bulk API,
// which answers with one digit per day: 0 working, 1 non-working,
// 2 shortened pre-holiday day.
type DayOffSource struct {
	BaseURL string
	Client  *http.Client
}

func (s *DayOffSource) Name() string { return "dayoff" }

func (s *DayOffSource) YearDays(year, weekType int) ([]calendar.Day, error) {
	url := fmt.Sprintf("%s/api/getdata?year=%d&pre=1", s.BaseURL, year)

	resp, err := s.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day-off data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("day-off API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read day-off response: %w", err)
	}
	data := strings.TrimSpace(string(body))

	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	daysInYear := int(end.Sub(start).Hours()/24) + 1
	if len(data) != daysInYear {
		return nil, fmt.Errorf("day-off data length mismatch: expected %d, got %d", daysInYear, len(data))
	}

	days := make([]calendar.Day, 0, daysInYear)
	for i, code := range data {
		date := start.AddDate(0, 0, i)
		var kind dayKind
		switch code {
		case '0':
			kind = working
		case '1':
			kind = nonWorking
		case '2':
			kind = preHoliday
		default:
			return nil, fmt.Errorf("unknown day-off code %q at position %d", code, i)
		}
		days = append(days, classify(date, kind, weekType))
	}
	return days, nil
}
