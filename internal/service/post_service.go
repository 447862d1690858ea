package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/maheshrc27/postcalendar/internal/transfer"
	"github.com/sirupsen/logrus"
)

// PostDispatcher hands scheduled posts to the publisher queue.
type PostDispatcher interface {
	Schedule(ctx context.Context, post *models.ScheduledPost) error
	Cancel(ctx context.Context, post *models.ScheduledPost) error
}

var ErrInvalidStatus = errors.New("status can only be set to published or failed")

type PostService interface {
	CreateDraft(ctx context.Context, dc *transfer.DraftCreation) (*models.DraftPost, error)
	CreateScheduled(ctx context.Context, pc *transfer.PostCreation) (*models.ScheduledPost, error)
	MoveScheduled(ctx context.Context, id string, day time.Time) (*models.ScheduledPost, error)
	PromoteDraft(ctx context.Context, id string, day time.Time, hhmm string) (*models.ScheduledPost, error)
	PostInfo(ctx context.Context, id string) (*models.ScheduledPost, error)
	PostsForDate(ctx context.Context, day time.Time) []*models.ScheduledPost
	ListDrafts(ctx context.Context) []*models.DraftPost
	ListScheduled(ctx context.Context) []*models.ScheduledPost
	UpdateStatus(ctx context.Context, id string, status models.PostStatus) (*models.ScheduledPost, error)
}

type postService struct {
	pr       repository.PostRepository
	dispatch PostDispatcher
	validate *validator.Validate
}

// NewPostService builds the service. dispatch may be nil, in which case posts
// are only kept in the store.
func NewPostService(pr repository.PostRepository, dispatch PostDispatcher) PostService {
	return &postService{
		pr:       pr,
		dispatch: dispatch,
		validate: newValidator(),
	}
}

func (s *postService) CreateDraft(ctx context.Context, dc *transfer.DraftCreation) (*models.DraftPost, error) {
	if dc == nil {
		return nil, &ValidationError{Field: "content", Message: "must not be empty"}
	}
	if err := Validate(s.validate, dc); err != nil {
		logrus.Info(err.Error())
		return nil, err
	}

	draft, err := s.pr.CreateDraft(dc.Content, models.UniquePlatforms(dc.Platforms), dc.Media)
	if err != nil {
		return nil, fmt.Errorf("error creating draft: %w", err)
	}
	return draft, nil
}

func (s *postService) CreateScheduled(ctx context.Context, pc *transfer.PostCreation) (*models.ScheduledPost, error) {
	if pc == nil {
		return nil, &ValidationError{Field: "content", Message: "must not be empty"}
	}
	if err := Validate(s.validate, pc); err != nil {
		logrus.Info(err.Error())
		return nil, err
	}

	post, err := s.pr.CreateScheduled(pc.Content, models.UniquePlatforms(pc.Platforms), pc.Media, pc.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	s.schedule(ctx, post)
	return post, nil
}

func (s *postService) MoveScheduled(ctx context.Context, id string, day time.Time) (*models.ScheduledPost, error) {
	previous, err := s.pr.GetScheduled(id)
	if err != nil {
		return nil, err
	}

	moved, err := s.pr.MoveScheduled(id, day)
	if err != nil {
		return nil, err
	}

	if previous.ScheduledAt != moved.ScheduledAt {
		s.cancel(ctx, previous)
		s.schedule(ctx, moved)
	}
	return moved, nil
}

func (s *postService) PromoteDraft(ctx context.Context, id string, day time.Time, hhmm string) (*models.ScheduledPost, error) {
	post, err := s.pr.PromoteDraft(id, day, hhmm)
	if err != nil {
		return nil, err
	}

	s.schedule(ctx, post)
	return post, nil
}

func (s *postService) PostInfo(ctx context.Context, id string) (*models.ScheduledPost, error) {
	if id == "" {
		return nil, repository.ErrNotFound
	}
	return s.pr.GetScheduled(id)
}

func (s *postService) PostsForDate(ctx context.Context, day time.Time) []*models.ScheduledPost {
	return s.pr.PostsForDate(day)
}

func (s *postService) ListDrafts(ctx context.Context) []*models.DraftPost {
	return s.pr.ListDrafts()
}

func (s *postService) ListScheduled(ctx context.Context) []*models.ScheduledPost {
	return s.pr.ListScheduled()
}

// UpdateStatus records the publisher's verdict for a post.
func (s *postService) UpdateStatus(ctx context.Context, id string, status models.PostStatus) (*models.ScheduledPost, error) {
	if status != models.PostStatusPublished && status != models.PostStatusFailed {
		return nil, ErrInvalidStatus
	}
	return s.pr.UpdateStatus(id, status)
}

func (s *postService) schedule(ctx context.Context, post *models.ScheduledPost) {
	if s.dispatch == nil {
		return
	}
	if err := s.dispatch.Schedule(ctx, post); err != nil {
		logrus.WithError(err).WithField("post_id", post.ID).Warn("unable to dispatch post, sweep will retry")
	}
}

func (s *postService) cancel(ctx context.Context, post *models.ScheduledPost) {
	if s.dispatch == nil {
		return
	}
	if err := s.dispatch.Cancel(ctx, post); err != nil {
		logrus.WithError(err).WithField("post_id", post.ID).Warn("unable to cancel previous dispatch")
	}
}
