package job

import (
	"context"
	"sync"
	"time"

	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/maheshrc27/postcalendar/internal/service"
	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

const (
	sweepConcurrency = 10
	// enqueues per second
	sweepRate = 50
)

// DispatchSweepJob re-enqueues every pending post due within the window.
// Enqueueing is idempotent per slot, so posts that already have a task are
// left alone by the queue.
type DispatchSweepJob struct {
	pr       repository.PostRepository
	dispatch service.PostDispatcher
	loc      *time.Location
	window   time.Duration
	limiter  ratelimit.Limiter
	now      func() time.Time
}

func NewDispatchSweepJob(
	pr repository.PostRepository,
	dispatch service.PostDispatcher,
	loc *time.Location,
	window time.Duration) *DispatchSweepJob {
	if loc == nil {
		loc = time.UTC
	}
	return &DispatchSweepJob{
		pr:       pr,
		dispatch: dispatch,
		loc:      loc,
		window:   window,
		limiter:  ratelimit.New(sweepRate),
		now:      time.Now,
	}
}

// Run is registered with cron.
func (j *DispatchSweepJob) Run() {
	j.Sweep(context.Background())
}

// Sweep returns the number of posts dispatched successfully.
func (j *DispatchSweepJob) Sweep(ctx context.Context) int {
	cutoff := j.now().In(j.loc).Add(j.window).Format(calendar.ScheduleLayout)
	posts := j.pr.ListPending(cutoff)
	if len(posts) == 0 {
		return 0
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		dispatched int
	)
	semaphore := make(chan struct{}, sweepConcurrency)

	for _, post := range posts {
		wg.Add(1)
		semaphore <- struct{}{}
		j.limiter.Take()

		go func(post *models.ScheduledPost) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := j.dispatch.Schedule(ctx, post); err != nil {
				logrus.WithError(err).WithField("post_id", post.ID).Warn("sweep could not dispatch post")
				return
			}
			mu.Lock()
			dispatched++
			mu.Unlock()
		}(post)
	}
	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"cutoff":     cutoff,
		"pending":    len(posts),
		"dispatched": dispatched,
	}).Info("dispatch sweep finished")
	return dispatched
}
