package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postcalendar/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekGrid(t *testing.T) {
	anchors := []time.Time{
		date(2024, time.June, 1),  // Saturday
		date(2024, time.June, 2),  // Sunday
		date(2024, time.June, 5),  // Wednesday
		date(2024, time.December, 31),
		date(2024, time.February, 29),
		time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC),
	}

	for _, anchor := range anchors {
		t.Run(FormatDate(anchor), func(t *testing.T) {
			days := WeekGrid(anchor)
			require.Len(t, days, 7)

			assert.Equal(t, StartOfWeek(anchor), days[0])
			assert.Equal(t, WeekStart, days[0].Weekday())
			for i := 1; i < len(days); i++ {
				assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
			}
			assert.False(t, StartOfDay(anchor).Before(days[0]))
			assert.False(t, StartOfDay(anchor).After(days[6]))
		})
	}
}

func TestWeekGridCrossesMonth(t *testing.T) {
	days := WeekGrid(date(2024, time.June, 1))
	assert.Equal(t, "2024-05-26", FormatDate(days[0]))
	assert.Equal(t, "2024-06-01", FormatDate(days[6]))
}

func TestMonthGridJune2024(t *testing.T) {
	days := MonthGrid(date(2024, time.June, 17))
	require.Len(t, days, 30)
	assert.Equal(t, "2024-06-01", FormatDate(days[0]))
	assert.Equal(t, "2024-06-30", FormatDate(days[29]))
}

func TestMonthGridBounds(t *testing.T) {
	cases := []struct {
		anchor time.Time
		count  int
	}{
		{date(2024, time.February, 10), 29},
		{date(2023, time.February, 28), 28},
		{date(2024, time.January, 31), 31},
		{date(2024, time.April, 1), 30},
	}

	for _, tc := range cases {
		days := MonthGrid(tc.anchor)
		require.Len(t, days, tc.count)

		first, last := StartOfMonth(tc.anchor), EndOfMonth(tc.anchor)
		for i, d := range days {
			assert.False(t, d.Before(first))
			assert.False(t, d.After(last))
			if i > 0 {
				assert.True(t, d.After(days[i-1]))
			}
		}
	}
}

func TestAdvance(t *testing.T) {
	anchor := date(2024, time.June, 5)

	assert.Equal(t, date(2024, time.June, 12), Advance(anchor, Forward, ViewWeek))
	assert.Equal(t, date(2024, time.May, 29), Advance(anchor, Backward, ViewWeek))
	assert.Equal(t, date(2024, time.July, 7), Advance(anchor, Forward, ViewMonth))
	assert.Equal(t, date(2024, time.May, 4), Advance(anchor, Backward, ViewMonth))

	// A 32 day jump from the end of January skips February.
	assert.Equal(t, time.March, Advance(date(2024, time.January, 31), Forward, ViewMonth).Month())
}

func TestParseViewMode(t *testing.T) {
	mode, err := ParseViewMode("month")
	require.NoError(t, err)
	assert.Equal(t, ViewMonth, mode)

	mode, err = ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, ViewWeek, mode)

	_, err = ParseViewMode("year")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestScheduleHelpers(t *testing.T) {
	d, hhmm, err := SplitSchedule("2024-06-01T09:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d)
	assert.Equal(t, "09:00", hhmm)

	for _, bad := range []string{"", "2024-06-01", "2024-06-01 09:00", "2024-06-01T9:00", "2024-13-01T09:00"} {
		_, _, err := SplitSchedule(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "2024-06-10T12:00", ComposeSchedule(date(2024, time.June, 10), DefaultTime))
	assert.True(t, ValidTime("23:59"))
	assert.False(t, ValidTime("24:00"))
	assert.False(t, ValidTime("9:00"))

	loc := time.FixedZone("UTC+2", 2*60*60)
	at, err := ScheduleTime("2024-06-01T09:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 1, 7, 0, 0, 0, time.UTC), at.UTC())
}

type lookupFunc func(time.Time) []*models.ScheduledPost

func (f lookupFunc) PostsForDate(d time.Time) []*models.ScheduledPost { return f(d) }

func TestJoinPosts(t *testing.T) {
	post := &models.ScheduledPost{ID: "p1", ScheduledAt: "2024-06-04T10:00"}
	lookup := lookupFunc(func(d time.Time) []*models.ScheduledPost {
		if FormatDate(d) == "2024-06-04" {
			return []*models.ScheduledPost{post}
		}
		return nil
	})

	days := JoinPosts(WeekGrid(date(2024, time.June, 4)), lookup)
	require.Len(t, days, 7)
	for _, d := range days {
		assert.NotNil(t, d.Posts)
		if d.Date == "2024-06-04" {
			assert.Equal(t, []*models.ScheduledPost{post}, d.Posts)
			assert.Equal(t, "Tuesday", d.Weekday)
		} else {
			assert.Empty(t, d.Posts)
		}
	}
}
