package repository

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound       = errors.New("post not found")
	ErrMalformedInput = errors.New("malformed input")
)

const maxIDAttempts = 5

// PostRepository owns the draft and scheduled collections. Callers are
// expected to validate content and platforms before creating posts.
type PostRepository interface {
	CreateDraft(content string, platforms []models.Platform, media []string) (*models.DraftPost, error)
	CreateScheduled(content string, platforms []models.Platform, media []string, scheduledAt string) (*models.ScheduledPost, error)
	MoveScheduled(id string, newDate time.Time) (*models.ScheduledPost, error)
	PromoteDraft(id string, newDate time.Time, hhmm string) (*models.ScheduledPost, error)
	PostsForDate(date time.Time) []*models.ScheduledPost
	GetDraft(id string) (*models.DraftPost, error)
	GetScheduled(id string) (*models.ScheduledPost, error)
	ListDrafts() []*models.DraftPost
	ListScheduled() []*models.ScheduledPost
	ListPending(cutoff string) []*models.ScheduledPost
	UpdateStatus(id string, status models.PostStatus) (*models.ScheduledPost, error)
}

type Option func(*postRepository)

// WithIDGenerator replaces the nanoid generator.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(r *postRepository) { r.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(r *postRepository) { r.now = now }
}

type postRepository struct {
	mu sync.RWMutex

	drafts    []*models.DraftPost
	scheduled []*models.ScheduledPost

	newID func() (string, error)
	now   func() time.Time
}

func NewPostRepository(opts ...Option) PostRepository {
	r := &postRepository{
		newID: utils.NewID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *postRepository) CreateDraft(content string, platforms []models.Platform, media []string) (*models.DraftPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.uniqueID(r.draftIndex)
	if err != nil {
		return nil, err
	}

	draft := &models.DraftPost{
		ID:        id,
		Content:   content,
		Platforms: append([]models.Platform(nil), platforms...),
		Media:     append([]string{}, media...),
		CreatedAt: r.now(),
	}
	r.drafts = append(r.drafts, draft)

	logrus.WithField("draft_id", id).Debug("draft created")
	return draft.Clone(), nil
}

func (r *postRepository) CreateScheduled(content string, platforms []models.Platform, media []string, scheduledAt string) (*models.ScheduledPost, error) {
	if _, _, err := calendar.SplitSchedule(scheduledAt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertScheduled(content, platforms, media, scheduledAt)
}

func (r *postRepository) MoveScheduled(id string, newDate time.Time) (*models.ScheduledPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.scheduledIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	post := r.scheduled[i]
	_, hhmm, err := calendar.SplitSchedule(post.ScheduledAt)
	if err != nil {
		// Only reachable if a record bypassed CreateScheduled.
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	moved := post.Clone()
	moved.ScheduledAt = calendar.ComposeSchedule(newDate, hhmm)
	moved.UpdatedAt = r.now()
	r.scheduled[i] = moved

	logrus.WithFields(logrus.Fields{
		"post_id": id,
		"from":    post.ScheduledAt,
		"to":      moved.ScheduledAt,
	}).Debug("scheduled post moved")
	return moved.Clone(), nil
}

// PromoteDraft schedules a copy of the draft. The draft itself stays in the
// draft collection and can be promoted again.
func (r *postRepository) PromoteDraft(id string, newDate time.Time, hhmm string) (*models.ScheduledPost, error) {
	if hhmm == "" {
		hhmm = calendar.DefaultTime
	}
	if !calendar.ValidTime(hhmm) {
		return nil, fmt.Errorf("%w: invalid time %q", ErrMalformedInput, hhmm)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.draftIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	draft := r.drafts[i]

	post, err := r.insertScheduled(draft.Content, draft.Platforms, draft.Media, calendar.ComposeSchedule(newDate, hhmm))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"draft_id": id,
		"post_id":  post.ID,
	}).Debug("draft promoted")
	return post, nil
}

func (r *postRepository) PostsForDate(date time.Time) []*models.ScheduledPost {
	prefix := calendar.FormatDate(date) + "T"

	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []*models.ScheduledPost
	for _, p := range r.scheduled {
		if strings.HasPrefix(p.ScheduledAt, prefix) {
			posts = append(posts, p.Clone())
		}
	}
	return posts
}

func (r *postRepository) GetDraft(id string) (*models.DraftPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.draftIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return r.drafts[i].Clone(), nil
}

func (r *postRepository) GetScheduled(id string) (*models.ScheduledPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.scheduledIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return r.scheduled[i].Clone(), nil
}

func (r *postRepository) ListDrafts() []*models.DraftPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drafts := make([]*models.DraftPost, 0, len(r.drafts))
	for _, d := range r.drafts {
		drafts = append(drafts, d.Clone())
	}
	return drafts
}

func (r *postRepository) ListScheduled() []*models.ScheduledPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*models.ScheduledPost, 0, len(r.scheduled))
	for _, p := range r.scheduled {
		posts = append(posts, p.Clone())
	}
	return posts
}

// ListPending returns posts still waiting for the publisher whose slot is at
// or before cutoff (YYYY-MM-DDTHH:MM, compared lexically).
func (r *postRepository) ListPending(cutoff string) []*models.ScheduledPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []*models.ScheduledPost
	for _, p := range r.scheduled {
		if p.Status == models.PostStatusScheduled && p.ScheduledAt <= cutoff {
			posts = append(posts, p.Clone())
		}
	}
	return posts
}

func (r *postRepository) UpdateStatus(id string, status models.PostStatus) (*models.ScheduledPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.scheduledIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	updated := r.scheduled[i].Clone()
	updated.Status = status
	updated.UpdatedAt = r.now()
	r.scheduled[i] = updated

	return updated.Clone(), nil
}

// insertScheduled must be called with the write lock held.
func (r *postRepository) insertScheduled(content string, platforms []models.Platform, media []string, scheduledAt string) (*models.ScheduledPost, error) {
	id, err := r.uniqueID(r.scheduledIndex)
	if err != nil {
		return nil, err
	}

	now := r.now()
	post := &models.ScheduledPost{
		ID:          id,
		Content:     content,
		Platforms:   append([]models.Platform(nil), platforms...),
		Media:       append([]string{}, media...),
		ScheduledAt: scheduledAt,
		Status:      models.PostStatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.scheduled = append(r.scheduled, post)

	logrus.WithFields(logrus.Fields{
		"post_id":      id,
		"scheduled_at": scheduledAt,
	}).Debug("scheduled post created")
	return post.Clone(), nil
}

func (r *postRepository) uniqueID(index func(string) int) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := r.newID()
		if err != nil {
			logrus.Info(err.Error())
			return "", fmt.Errorf("generate id: %w", err)
		}
		if index(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate id: %d collisions in a row", maxIDAttempts)
}

func (r *postRepository) draftIndex(id string) int {
	for i, d := range r.drafts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (r *postRepository) scheduledIndex(id string) int {
	for i, p := range r.scheduled {
		if p.ID == id {
			return i
		}
	}
	return -1
}
