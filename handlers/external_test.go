// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mlebedev/calendar-api/external"
	"github.com/mlebedev/calendar-api/models"
	"github.com/mlebedev/calendar-api/testutil"
)

// yearServer serves a minimal xmlcalendar-style 2025 calendar
func yearServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"year": 2025,
			"months": [
				{"month": 1, "days": "1,2,3,4,5,6,7,8,11,12,18,19,25,26"},
				{"month": 5, "days": "1,2,3,4,8*,9,10,11,17,18,24,25,31"}
			]
		}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func getYear(t *testing.T, h *ExternalHandler, year, query string) *httptest.ResponseRecorder {
	t.Helper()

	path := "/external/period/" + year
	if query != "" {
		path += "?" + query
	}
	req := testutil.MakeRequest("GET", path, nil, nil)
	req.SetPathValue("year", year)
	w := httptest.NewRecorder()

	h.GetYear(w, req)
	return w
}

func TestGetYear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	server := yearServer(t)

	cfg := testutil.GetTestConfig()
	client := external.NewClient(server.URL+"/data/ru/{year}/calendar.json", server.URL)
	h := NewExternalHandler(db, client, cfg)

	w := getYear(t, h, "2025", "statistic=true")
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PeriodResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Period != "Год" {
		t.Errorf("period label = %q", resp.Period)
	}
	if len(resp.Days) != 365 {
		t.Fatalf("days = %d, want 365", len(resp.Days))
	}
	if resp.Statistic == nil {
		t.Fatal("expected statistic in response")
	}
	if resp.CalendarDays != 365 {
		t.Errorf("calendar_days = %d", resp.CalendarDays)
	}
	if resp.Holidays == 0 {
		t.Error("expected holidays from the marked days")
	}

	byDate := make(map[string]models.FormattedDay, len(resp.Days))
	for _, d := range resp.Days {
		byDate[d.Date] = d
	}
	if d := byDate["09.05.2025"]; d.TypeID != models.TypeHoliday || d.Note == nil || *d.Note != "День Победы" {
		t.Errorf("May 9 = %+v, want named holiday", d)
	}
	if d := byDate["08.05.2025"]; d.TypeID != models.TypeWorkday || d.Note == nil {
		t.Errorf("May 8 = %+v, want shortened workday", d)
	}

	// Nothing persisted without save=true
	if testutil.CountDays(t, db) != 0 {
		t.Error("fetch without save must not persist rows")
	}
}

func TestGetYearSave(t *testing.T) {
	db := testutil.SetupTestDB(t)
	server := yearServer(t)

	client := external.NewClient(server.URL+"/data/ru/{year}/calendar.json", server.URL)
	h := NewExternalHandler(db, client, testutil.GetTestConfig())

	w := getYear(t, h, "2025", "save=true")
	testutil.AssertStatus(t, w, http.StatusOK)

	if n := testutil.CountDays(t, db); n != 365 {
		t.Errorf("stored rows = %d, want 365", n)
	}
}

func TestGetYearValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	server := yearServer(t)

	client := external.NewClient(server.URL+"/data/ru/{year}/calendar.json", server.URL)
	h := NewExternalHandler(db, client, testutil.GetTestConfig())

	testCases := []struct {
		name  string
		year  string
		query string
	}{
		{"not a number", "abc", ""},
		{"too old", "2016", ""},
		{"in the future", "2999", ""},
		{"bad week type", "2025", "week_type=4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := getYear(t, h, tc.year, tc.query)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestGetYearUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := external.NewClient(server.URL+"/{year}.json", server.URL)
	h := NewExternalHandler(db, client, testutil.GetTestConfig())

	w := getYear(t, h, "2025", "")
	testutil.AssertStatus(t, w, http.StatusBadGateway)
}
