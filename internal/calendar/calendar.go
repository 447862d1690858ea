// Package calendar builds the day sequences behind the week and month views
// and handles the date/time string formats used by scheduled posts.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	ScheduleLayout = "2006-01-02T15:04"

	// DefaultTime is used when a draft is dropped onto a day without a time.
	DefaultTime = "12:00"
)

// WeekStart is fixed so grids never depend on the runtime locale.
const WeekStart = time.Sunday

type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

var ErrInvalidView = errors.New("invalid calendar view")

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewWeek, ViewMonth:
		return ViewMode(s), nil
	case "":
		return ViewWeek, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(WeekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// WeekGrid returns the seven days of the week containing anchor.
func WeekGrid(anchor time.Time) []time.Time {
	start := StartOfWeek(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid returns every day of anchor's month in ascending order. The grid
// is not padded with days of the adjacent months, so it may start or end
// mid-week.
func MonthGrid(anchor time.Time) []time.Time {
	first := StartOfMonth(anchor)
	last := EndOfMonth(anchor)
	days := make([]time.Time, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func Grid(anchor time.Time, mode ViewMode) []time.Time {
	if mode == ViewMonth {
		return MonthGrid(anchor)
	}
	return WeekGrid(anchor)
}

// Advance moves the anchor one view forward or backward. Month views jump a
// fixed 32 days, which does not always land in the adjacent month.
func Advance(anchor time.Time, direction Direction, mode ViewMode) time.Time {
	step := 7
	if mode == ViewMonth {
		step = 32
	}
	return anchor.AddDate(0, 0, step*int(direction))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ValidTime(hhmm string) bool {
	_, err := time.Parse(TimeLayout, hhmm)
	return err == nil && len(hhmm) == len(TimeLayout)
}

func ComposeSchedule(date time.Time, hhmm string) string {
	return FormatDate(date) + "T" + hhmm
}

// SplitSchedule separates a YYYY-MM-DDTHH:MM value into its date and
// time-of-day components.
func SplitSchedule(scheduledAt string) (string, string, error) {
	if _, err := time.Parse(ScheduleLayout, scheduledAt); err != nil || len(scheduledAt) != len(ScheduleLayout) {
		return "", "", fmt.Errorf("invalid schedule %q", scheduledAt)
	}
	return scheduledAt[:len(DateLayout)], scheduledAt[len(DateLayout)+1:], nil
}

// ScheduleTime resolves a scheduled_at value to an instant in loc.
func ScheduleTime(scheduledAt string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(ScheduleLayout, scheduledAt, loc)
}
