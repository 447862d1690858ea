package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultQueue = "default"

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type TaskDeleter interface {
	DeleteTask(queue, id string) error
}

// Dispatcher schedules publish tasks at each post's slot.
type Dispatcher struct {
	client    Enqueuer
	inspector TaskDeleter
	loc       *time.Location
}

func NewDispatcher(client Enqueuer, inspector TaskDeleter, loc *time.Location) *Dispatcher {
	if loc == nil {
		loc = time.UTC
	}
	return &Dispatcher{client: client, inspector: inspector, loc: loc}
}

func (d *Dispatcher) Schedule(ctx context.Context, post *models.ScheduledPost) error {
	processAt, err := calendar.ScheduleTime(post.ScheduledAt, d.loc)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(PublishPostPayload{PostID: post.ID, ScheduledAt: post.ScheduledAt})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, payload)
	_, err = d.client.EnqueueContext(ctx, task,
		asynq.TaskID(TaskID(post)),
		asynq.ProcessAt(processAt),
		asynq.MaxRetry(3),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"post_id":    post.ID,
		"process_at": processAt,
	}).Info("publish task scheduled")
	return nil
}

// Cancel removes the pending task for the post's current slot. A task that
// already ran or was never enqueued is not an error.
func (d *Dispatcher) Cancel(ctx context.Context, post *models.ScheduledPost) error {
	if d.inspector == nil {
		return nil
	}

	err := d.inspector.DeleteTask(defaultQueue, TaskID(post))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return err
}
