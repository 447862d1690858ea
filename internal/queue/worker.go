package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/sirupsen/logrus"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	return q.PublishPost(ctx, payload)
}

// PublishPost delivers the post if the task still matches it and records the
// outcome.
func (q *Queue) PublishPost(ctx context.Context, payload PublishPostPayload) error {
	log := logrus.WithFields(logrus.Fields{
		"post_id":      payload.PostID,
		"scheduled_at": payload.ScheduledAt,
	})

	post, err := q.pr.GetScheduled(payload.PostID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info("post no longer exists, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	if post.IsFinal() {
		log.WithField("status", post.Status).Info("post already settled, skipping")
		return nil
	}
	if post.ScheduledAt != payload.ScheduledAt {
		log.WithField("current", post.ScheduledAt).Info("post was moved, skipping stale task")
		return nil
	}

	status := models.PostStatusPublished
	if err := q.publisher.Publish(ctx, post); err != nil {
		status = models.PostStatusFailed
		sentry.CaptureException(err)
		log.WithError(err).Error("publishing failed")
	}

	if _, err := q.pr.UpdateStatus(post.ID, status); err != nil {
		log.WithError(err).Error("unable to record publish status")
		return err
	}
	return nil
}
