package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/internal/repository"
)

func TestCalendarMonthView(t *testing.T) {
	repo := repository.NewPostRepository()
	post, err := repo.CreateScheduled("Sale now", []models.Platform{models.PlatformInstagram}, nil, "2024-06-15T09:00")
	require.NoError(t, err)

	view := NewCalendarService(repo).View(context.Background(), time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC), calendar.ViewMonth)

	assert.Equal(t, calendar.ViewMonth, view.View)
	assert.Equal(t, "2024-06-10", view.Anchor)
	assert.Equal(t, "2024-05-09", view.Previous)
	assert.Equal(t, "2024-07-12", view.Next)
	require.Len(t, view.Days, 30)
	assert.Equal(t, "2024-06-01", view.Days[0].Date)

	day15 := view.Days[14]
	assert.Equal(t, "2024-06-15", day15.Date)
	require.Len(t, day15.Posts, 1)
	assert.Equal(t, post.ID, day15.Posts[0].ID)
}

func TestCalendarWeekView(t *testing.T) {
	repo := repository.NewPostRepository()
	view := NewCalendarService(repo).View(context.Background(), time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), calendar.ViewWeek)

	require.Len(t, view.Days, 7)
	assert.Equal(t, "2024-06-02", view.Days[0].Date)
	assert.Equal(t, "Sunday", view.Days[0].Weekday)
	assert.Equal(t, "2024-05-29", view.Previous)
	assert.Equal(t, "2024-06-12", view.Next)
}
