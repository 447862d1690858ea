// Package dragdrop turns calendar drop gestures into post commands.
package dragdrop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/sirupsen/logrus"
)

type Kind string

const (
	KindScheduled Kind = "scheduled"
	KindDraft     Kind = "draft"
)

type Action string

const (
	ActionMove    Action = "move"
	ActionPromote Action = "promote"
)

var ErrUnsupportedItem = errors.New("unsupported drag item")

// Item is either a ScheduledItem or a DraftItem.
type Item interface {
	Kind() Kind
	ItemID() string
	isItem()
}

// ScheduledItem carries an already scheduled post. Snapshot is what the
// surface rendered while dragging; commands always re-read by ID.
type ScheduledItem struct {
	ID       string
	Snapshot *models.ScheduledPost
}

func (ScheduledItem) Kind() Kind       { return KindScheduled }
func (i ScheduledItem) ItemID() string { return i.ID }
func (ScheduledItem) isItem()          {}

type DraftItem struct {
	ID       string
	Snapshot *models.DraftPost
}

func (DraftItem) Kind() Kind       { return KindDraft }
func (i DraftItem) ItemID() string { return i.ID }
func (DraftItem) isItem()          {}

// Target is the calendar day an item was dropped on. Time only applies to
// draft promotion; moved posts keep their own time of day.
type Target struct {
	Day  time.Time
	Time string
}

type Outcome struct {
	Action  Action
	Skipped bool
	Post    *models.ScheduledPost
}

type Commands interface {
	MoveScheduled(ctx context.Context, id string, day time.Time) (*models.ScheduledPost, error)
	PromoteDraft(ctx context.Context, id string, day time.Time, hhmm string) (*models.ScheduledPost, error)
}

// Controller holds no state between drops.
type Controller struct {
	cmd Commands
}

func NewController(cmd Commands) *Controller {
	return &Controller{cmd: cmd}
}

func (c *Controller) Drop(ctx context.Context, item Item, target Target) (Outcome, error) {
	var (
		out Outcome
		err error
	)

	switch it := item.(type) {
	case ScheduledItem:
		out.Action = ActionMove
		out.Post, err = c.cmd.MoveScheduled(ctx, it.ID, target.Day)
	case DraftItem:
		hhmm := target.Time
		if hhmm == "" {
			hhmm = calendar.DefaultTime
		}
		out.Action = ActionPromote
		out.Post, err = c.cmd.PromoteDraft(ctx, it.ID, target.Day, hhmm)
	default:
		return Outcome{}, fmt.Errorf("%w: %T", ErrUnsupportedItem, item)
	}

	if errors.Is(err, repository.ErrNotFound) {
		logrus.WithFields(logrus.Fields{
			"kind": item.Kind(),
			"id":   item.ItemID(),
			"day":  calendar.FormatDate(target.Day),
		}).Info("drop skipped, item no longer exists")
		return Outcome{Action: out.Action, Skipped: true}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	return out, nil
}
