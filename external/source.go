// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package external

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/mlebedev/calendar-api/calendar"
	"github.com/mlebedev/calendar-api/models"
)

const defaultTimeout = 10 * time.Second

// ErrUnavailable reports that no external source could produce a
// calendar (both primary and fallback failed).
var ErrUnavailable = errors.New("external calendar source unavailable")

// Source produces one full year of calendar days from a third-party
// provider, already mapped onto the service's day types.
type Source interface {
	Name() string
	YearDays(year, weekType int) ([]calendar.Day, error)
}

// Client chains a primary source with a single fallback. Validation of
// the requested year happens before Client is ever called, so any
// failure reaching this point is a genuine source or parse fault and
// the fallback is fair game.
type Client struct {
	primary  Source
	fallback Source
}

// NewClient builds the default chain: the year-JSON calendar source
// first, the day-off digit API as fallback.
func NewClient(calendarURL, fallbackURL string) *Client {
	httpClient := &http.Client{Timeout: defaultTimeout}
	return &Client{
		primary:  &YearJSONSource{URL: calendarURL, Client: httpClient},
		fallback: &DayOffSource{BaseURL: fallbackURL, Client: httpClient},
	}
}

// NewClientWithSources wires explicit sources, used by tests
func NewClientWithSources(primary, fallback Source) *Client {
	return &Client{primary: primary, fallback: fallback}
}

// YearDays fetches a year's calendar, falling back once
func (c *Client) YearDays(year, weekType int) ([]calendar.Day, error) {
	days, primaryErr := c.primary.YearDays(year, weekType)
	if primaryErr == nil {
		return days, nil
	}

	slog.Warn("primary calendar source failed, falling back",
		"source", c.primary.Name(),
		"year", year,
		"error", primaryErr,
	)

	days, fallbackErr := c.fallback.YearDays(year, weekType)
	if fallbackErr != nil {
		return nil, fmt.Errorf("%w: %s: %v; %s: %v",
			ErrUnavailable, c.primary.Name(), primaryErr, c.fallback.Name(), fallbackErr)
	}

	slog.Info("fallback calendar source used", "source", c.fallback.Name(), "year", year)
	return days, nil
}

// officialHolidays maps (month, day) to the holiday name used as the
// day's note. Source formats mark non-working days but not which state
// holiday they celebrate.
var officialHolidays = map[[2]int]string{
	{1, 1}:  "Новогодние каникулы",
	{1, 2}:  "Новогодние каникулы",
	{1, 3}:  "Новогодние каникулы",
	{1, 4}:  "Новогодние каникулы",
	{1, 5}:  "Новогодние каникулы",
	{1, 6}:  "Новогодние каникулы",
	{1, 7}:  "Рождество Христово",
	{1, 8}:  "Новогодние каникулы",
	{2, 23}: "День защитника Отечества",
	{3, 8}:  "Международный женский день",
	{5, 1}:  "Праздник Весны и Труда",
	{5, 9}:  "День Победы",
	{6, 12}: "День России",
	{11, 4}: "День народного единства",
}

const preHolidayNote = "Предпраздничный день"

type dayKind int

const (
	working dayKind = iota
	nonWorking
	preHoliday
)

// classify maps a provider-marked day onto the service's day model.
// Provider data follows the national 5-day-week calendar; the week
// type reinterprets marked Saturdays for 6-day-week consumers.
func classify(date time.Time, kind dayKind, weekType int) calendar.Day {
	weekDay := models.WeekDayOf(date)
	day := calendar.Day{Date: date, WeekDay: weekDay}

	switch kind {
	case preHoliday:
		day.TypeID = models.TypeWorkday
		note := preHolidayNote
		day.Note = &note
	case nonWorking:
		if name, ok := officialHolidays[[2]int{int(date.Month()), date.Day()}]; ok {
			day.TypeID = models.TypeHoliday
			day.Note = &name
		} else if weekDay == "сб" || weekDay == "вс" {
			if slices.Contains(models.WeekendDays(weekType), weekDay) {
				day.TypeID = models.TypeWeekend
			} else {
				// A marked Saturday is an ordinary workday under a
				// 6-day week
				day.TypeID = models.TypeWorkday
			}
		} else {
			day.TypeID = models.TypeHoliday
		}
	default:
		day.TypeID = models.TypeWorkday
	}

	day.TypeText = models.DayTypes[day.TypeID]
	return day
}
