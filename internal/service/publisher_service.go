package service

import (
	"context"

	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/sirupsen/logrus"
)

// Publisher delivers a scheduled post to its platforms.
type Publisher interface {
	Publish(ctx context.Context, post *models.ScheduledPost) error
}

type logPublisher struct {
	ps PlatformService
}

// NewLogPublisher returns a Publisher that only records what would be sent.
func NewLogPublisher(ps PlatformService) Publisher {
	return &logPublisher{ps: ps}
}

func (p *logPublisher) Publish(ctx context.Context, post *models.ScheduledPost) error {
	for _, platform := range post.Platforms {
		name := string(platform)
		if info, ok := p.ps.Lookup(name); ok {
			name = info.Name
		}
		logrus.WithFields(logrus.Fields{
			"post_id":      post.ID,
			"platform":     name,
			"scheduled_at": post.ScheduledAt,
			"media":        len(post.Media),
		}).Info("publishing post")
	}
	return nil
}
