// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strings"
	"time"
)

// Day type constants (type_id values)
const (
	TypeWorkday = 1
	TypeWeekend = 2
	TypeHoliday = 3
)

// DayTypes holds the canonical type_text labels, keyed by type_id
var DayTypes = map[int]string{
	TypeWorkday: "Рабочий день",
	TypeWeekend: "Выходной день",
	TypeHoliday: "Государственный праздник",
}

// WeekDays holds the two-letter weekday codes, ISO order (Monday first)
var WeekDays = [7]string{"пн", "вт", "ср", "чт", "пт", "сб", "вс"}

// Week type constants
const (
	FiveDayWeek = 5
	SixDayWeek  = 6
)

// MaxNoteLength limits the free-text note column
const MaxNoteLength = 255

// WeekDayOf returns the two-letter weekday code for a date
func WeekDayOf(date time.Time) string {
	return WeekDays[(int(date.Weekday())+6)%7]
}

// WeekendDays returns the weekday codes that count as the default
// weekend for a week type: {сб, вс} for a 5-day week, {вс} for 6-day.
func WeekendDays(weekType int) []string {
	if weekType == SixDayWeek {
		return []string{"вс"}
	}
	return []string{"сб", "вс"}
}

// ValidWeekType reports whether the value denotes a known week type
func ValidWeekType(weekType int) bool {
	return weekType == FiveDayWeek || weekType == SixDayWeek
}

// WorkWeekLabel renders the work_week_type envelope field
func WorkWeekLabel(weekType int) string {
	return fmt.Sprintf("%d-дневная рабочая неделя", weekType)
}

// ISODate is a calendar date that marshals as "YYYY-MM-DD"
type ISODate struct {
	time.Time
}

func (d ISODate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *ISODate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("date must look like YYYY-MM-DD, got %q", s)
	}
	d.Time = t
	return nil
}

// Request types

type DayRequest struct {
	Date   ISODate `json:"date"`
	TypeID int     `json:"type_id"`
}

// PeriodQuery holds the query parameters of GET /period/{period}
type PeriodQuery struct {
	Compact   bool `schema:"compact"`
	WeekType  int  `schema:"week_type,default:5"`
	Statistic bool `schema:"statistic"`
}

// ExternalQuery holds the query parameters of GET /external/period/{year}
type ExternalQuery struct {
	WeekType  int  `schema:"week_type,default:5"`
	Statistic bool `schema:"statistic"`
	Save      bool `schema:"save"`
}

// ImportDay is one day of a bulk production-calendar payload
type ImportDay struct {
	Date   string  `json:"date"` // DD.MM.YYYY
	TypeID int     `json:"type_id"`
	Note   *string `json:"note,omitempty"`
}

// ImportRequest is the bulk ingestion payload: the same envelope shape
// the period endpoint produces, so an exported calendar round-trips.
type ImportRequest struct {
	DateStart    string      `json:"date_start"`
	DateEnd      string      `json:"date_end"`
	WorkWeekType string      `json:"work_week_type"`
	Period       string      `json:"period"`
	Days         []ImportDay `json:"days"`
}

// Response types

type ImportResponse struct {
	Inserted int `json:"inserted"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FormattedDay is the external representation of a calendar day.
// The stored id never leaves the service; note is omitted when absent.
type FormattedDay struct {
	Date     string  `json:"date"` // DD.MM.YYYY
	TypeID   int     `json:"type_id"`
	TypeText string  `json:"type_text"`
	Note     *string `json:"note,omitempty"`
	WeekDay  string  `json:"week_day"`
}

// Statistic aggregates a day list by type
type Statistic struct {
	CalendarDays                int `json:"calendar_days"`
	CalendarDaysWithoutHolidays int `json:"calendar_days_without_holidays"`
	WorkDays                    int `json:"work_days"`
	Weekends                    int `json:"weekends"`
	Holidays                    int `json:"holidays"`
}

// PeriodResponse is the envelope of the read path. The embedded
// statistic pointer flattens into the envelope when requested and
// disappears entirely when not.
type PeriodResponse struct {
	DateStart    string `json:"date_start"`
	DateEnd      string `json:"date_end"`
	WorkWeekType string `json:"work_week_type"`
	Period       string `json:"period"`
	*Statistic
	Days []FormattedDay `json:"days"`
}

// Domain types

// StoredDay is a persisted override row: exactly one per date
type StoredDay struct {
	ID       int64   `json:"id"`
	Date     ISODate `json:"date"`
	TypeID   int     `json:"type_id"`
	TypeText string  `json:"type_text"`
	Note     *string `json:"note,omitempty"`
	WeekDay  string  `json:"week_day"`
}

// NewStoredDay assembles an override row from caller-supplied fields.
// type_text and week_day are always derived here, never taken from the
// caller.
func NewStoredDay(date time.Time, typeID int, note *string) StoredDay {
	return StoredDay{
		Date:     ISODate{date},
		TypeID:   typeID,
		TypeText: DayTypes[typeID],
		Note:     note,
		WeekDay:  WeekDayOf(date),
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
