// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package external

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mlebedev/calendar-api/calendar"
	"github.com/mlebedev/calendar-api/models"
)

type stubSource struct {
	name string
	days []calendar.Day
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) YearDays(year, weekType int) ([]calendar.Day, error) {
	return s.days, s.err
}

func someDays(n int) []calendar.Day {
	days := make([]calendar.Day, n)
	for i := range days {
		days[i] = calendar.Day{
			Date:     time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			TypeID:   models.TypeWorkday,
			TypeText: models.DayTypes[models.TypeWorkday],
		}
	}
	return days
}

func TestClientUsesPrimary(t *testing.T) {
	primary := &stubSource{name: "primary", days: someDays(3)}
	fallback := &stubSource{name: "fallback", err: errors.New("must not be called")}
	client := NewClientWithSources(primary, fallback)

	days, err := client.YearDays(2025, models.FiveDayWeek)
	if err != nil {
		t.Fatalf("YearDays() error = %v", err)
	}
	if len(days) != 3 {
		t.Errorf("YearDays() returned %d days, want 3", len(days))
	}
}

func TestClientFallsBack(t *testing.T) {
	primary := &stubSource{name: "primary", err: errors.New("boom")}
	fallback := &stubSource{name: "fallback", days: someDays(2)}
	client := NewClientWithSources(primary, fallback)

	days, err := client.YearDays(2025, models.FiveDayWeek)
	if err != nil {
		t.Fatalf("YearDays() error = %v", err)
	}
	if len(days) != 2 {
		t.Errorf("YearDays() returned %d days, want 2", len(days))
	}
}

func TestClientBothFail(t *testing.T) {
	primary := &stubSource{name: "primary", err: errors.New("primary down")}
	fallback := &stubSource{name: "fallback", err: errors.New("fallback down")}
	client := NewClientWithSources(primary, fallback)

	_, err := client.YearDays(2025, models.FiveDayWeek)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("YearDays() error = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(err.Error(), "primary down") || !strings.Contains(err.Error(), "fallback down") {
		t.Errorf("error should carry both causes, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		kind     dayKind
		weekType int
		wantType int
		wantNote string
	}{
		{
			name:     "working day",
			date:     time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), // Tuesday
			kind:     working,
			weekType: models.FiveDayWeek,
			wantType: models.TypeWorkday,
		},
		{
			name:     "pre-holiday shortened day",
			date:     time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), // Friday
			kind:     preHoliday,
			weekType: models.FiveDayWeek,
			wantType: models.TypeWorkday,
			wantNote: "Предпраздничный день",
		},
		{
			name:     "official holiday",
			date:     time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC),
			kind:     nonWorking,
			weekType: models.FiveDayWeek,
			wantType: models.TypeHoliday,
			wantNote: "День Победы",
		},
		{
			name:     "plain saturday 5-day week",
			date:     time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
			kind:     nonWorking,
			weekType: models.FiveDayWeek,
			wantType: models.TypeWeekend,
		},
		{
			name:     "plain saturday 6-day week",
			date:     time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
			kind:     nonWorking,
			weekType: models.SixDayWeek,
			wantType: models.TypeWorkday,
		},
		{
			name:     "sunday 6-day week",
			date:     time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
			kind:     nonWorking,
			weekType: models.SixDayWeek,
			wantType: models.TypeWeekend,
		},
		{
			name:     "non-working weekday without holiday name",
			date:     time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), // Friday between holidays
			kind:     nonWorking,
			weekType: models.FiveDayWeek,
			wantType: models.TypeHoliday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := classify(tt.date, tt.kind, tt.weekType)
			if day.TypeID != tt.wantType {
				t.Errorf("type_id = %d, want %d", day.TypeID, tt.wantType)
			}
			if day.TypeText != models.DayTypes[tt.wantType] {
				t.Errorf("type_text = %q", day.TypeText)
			}
			if tt.wantNote == "" && day.Note != nil {
				t.Errorf("note = %q, want none", *day.Note)
			}
			if tt.wantNote != "" && (day.Note == nil || *day.Note != tt.wantNote) {
				t.Errorf("note = %v, want %q", day.Note, tt.wantNote)
			}
		})
	}
}

func TestYearJSONSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "2025") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{
			"year": 2025,
			"months": [
				{"month": 1, "days": "1,2,3,4,5,6,7,8,11,12,18,19,25,26"},
				{"month": 3, "days": "1,2,7*,8,9,15,16,22,23,29,30"}
			]
		}`)
	}))
	defer server.Close()

	source := &YearJSONSource{URL: server.URL + "/data/ru/{year}/calendar.json", Client: server.Client()}
	days, err := source.YearDays(2025, models.FiveDayWeek)
	if err != nil {
		t.Fatalf("YearDays() error = %v", err)
	}
	if len(days) != 365 {
		t.Fatalf("YearDays() returned %d days, want 365", len(days))
	}

	byDate := make(map[string]calendar.Day, len(days))
	for _, d := range days {
		byDate[d.Date.Format("2006-01-02")] = d
	}

	if d := byDate["2025-01-01"]; d.TypeID != models.TypeHoliday {
		t.Errorf("Jan 1 type_id = %d, want holiday", d.TypeID)
	}
	if d := byDate["2025-03-07"]; d.TypeID != models.TypeWorkday || d.Note == nil {
		t.Errorf("Mar 7 should be a shortened workday, got %+v", d)
	}
	if d := byDate["2025-03-08"]; d.TypeID != models.TypeHoliday {
		t.Errorf("Mar 8 type_id = %d, want holiday", d.TypeID)
	}
	if d := byDate["2025-01-14"]; d.TypeID != models.TypeWorkday {
		t.Errorf("Jan 14 type_id = %d, want workday", d.TypeID)
	}
}

func TestYearJSONSourceWrongYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"year": 2024, "months": []}`)
	}))
	defer server.Close()

	source := &YearJSONSource{URL: server.URL + "/{year}.json", Client: server.Client()}
	if _, err := source.YearDays(2025, models.FiveDayWeek); err == nil {
		t.Error("expected error for mismatched year")
	}
}

func TestDayOffSource(t *testing.T) {
	// 365 digits for 2025: all working except Jan 1 (holiday),
	// Jan 2 (pre-holiday marker for test purposes) and weekends left as 0
	codes := []byte(strings.Repeat("0", 365))
	codes[0] = '1'
	codes[1] = '2'

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("year") != "2025" {
			http.Error(w, "bad year", http.StatusBadRequest)
			return
		}
		w.Write(codes)
	}))
	defer server.Close()

	source := &DayOffSource{BaseURL: server.URL, Client: server.Client()}
	days, err := source.YearDays(2025, models.FiveDayWeek)
	if err != nil {
		t.Fatalf("YearDays() error = %v", err)
	}
	if len(days) != 365 {
		t.Fatalf("YearDays() returned %d days, want 365", len(days))
	}

	if days[0].TypeID != models.TypeHoliday {
		t.Errorf("Jan 1 type_id = %d, want holiday", days[0].TypeID)
	}
	if days[1].TypeID != models.TypeWorkday || days[1].Note == nil {
		t.Errorf("Jan 2 should be a shortened workday, got %+v", days[1])
	}
	if days[13].TypeID != models.TypeWorkday {
		t.Errorf("Jan 14 type_id = %d, want workday", days[13].TypeID)
	}
}

func TestDayOffSourceLengthMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("010101"))
	}))
	defer server.Close()

	source := &DayOffSource{BaseURL: server.URL, Client: server.Client()}
	if _, err := source.YearDays(2025, models.FiveDayWeek); err == nil {
		t.Error("expected error for short digit string")
	}
}

func TestDayOffSourceBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := &DayOffSource{BaseURL: server.URL, Client: server.Client()}
	if _, err := source.YearDays(2025, models.FiveDayWeek); err == nil {
		t.Error("expected error for non-200 status")
	}
}
