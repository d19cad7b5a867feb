// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/mlebedev/calendar-api/cliparse"
	"github.com/mlebedev/calendar-api/db"
)

// TestToken is the bearer token used by protected routes in tests
const TestToken = "test-api-token"

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each test gets its own database, keyed by the test name.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// The in-memory database lives as long as one connection does
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		APIToken:     TestToken,
		CalendarURL:  "http://localhost/data/ru/{year}/calendar.json",
		FallbackURL:  "http://localhost",
	}
}

// InsertTestDay inserts an override row directly and returns its id
func InsertTestDay(t *testing.T, conn *sql.DB, date string, typeID int, typeText string, note *string, weekDay string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO calendar_day (date, type_id, type_text, note, week_day)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, date, typeID, typeText, note, weekDay).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test day: %v", err)
	}
	return id
}

// CountDays returns the number of stored override rows
func CountDays(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM calendar_day`).Scan(&n); err != nil {
		t.Fatalf("Failed to count days: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeaders returns headers carrying the test bearer token
func AuthHeaders() map[string]string {
	return map[string]string{"Authentication": "Bearer " + TestToken}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
