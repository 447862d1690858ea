package service

import (
	"context"
	"time"

	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/transfer"
)

type CalendarService interface {
	View(ctx context.Context, anchor time.Time, mode calendar.ViewMode) *transfer.CalendarView
}

type calendarService struct {
	posts calendar.PostLookup
}

func NewCalendarService(posts calendar.PostLookup) CalendarService {
	return &calendarService{posts: posts}
}

func (s *calendarService) View(ctx context.Context, anchor time.Time, mode calendar.ViewMode) *transfer.CalendarView {
	anchor = calendar.StartOfDay(anchor)
	return &transfer.CalendarView{
		View:     mode,
		Anchor:   calendar.FormatDate(anchor),
		Previous: calendar.FormatDate(calendar.Advance(anchor, calendar.Backward, mode)),
		Next:     calendar.FormatDate(calendar.Advance(anchor, calendar.Forward, mode)),
		Days:     calendar.JoinPosts(calendar.Grid(anchor, mode), s.posts),
	}
}
