package calendar

import (
	"time"

	"github.com/maheshrc27/postcalendar/internal/models"
)

type PostLookup interface {
	PostsForDate(date time.Time) []*models.ScheduledPost
}

type Day struct {
	Date    string                  `json:"date"`
	Weekday string                  `json:"weekday"`
	Posts   []*models.ScheduledPost `json:"posts"`
}

// JoinPosts attaches the scheduled posts of each day, keeping the store order.
func JoinPosts(days []time.Time, lookup PostLookup) []Day {
	out := make([]Day, 0, len(days))
	for _, d := range days {
		posts := lookup.PostsForDate(d)
		if posts == nil {
			posts = []*models.ScheduledPost{}
		}
		out = append(out, Day{
			Date:    FormatDate(d),
			Weekday: d.Weekday().String(),
			Posts:   posts,
		})
	}
	return out
}
