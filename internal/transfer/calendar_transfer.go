package transfer

import "github.com/maheshrc27/postcalendar/internal/calendar"

type CalendarView struct {
	View     calendar.ViewMode `json:"view"`
	Anchor   string            `json:"anchor"`
	Previous string            `json:"previous"`
	Next     string            `json:"next"`
	Days     []calendar.Day    `json:"days"`
}
