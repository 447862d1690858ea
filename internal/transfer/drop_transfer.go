package transfer

import (
	"encoding/json"
	"fmt"

	"github.com/maheshrc27/postcalendar/internal/dragdrop"
	"github.com/maheshrc27/postcalendar/internal/models"
)

// DragItem is the wire form of a drag payload.
type DragItem struct {
	Kind     string          `json:"kind" validate:"required,oneof=scheduled draft"`
	ID       string          `json:"id" validate:"required"`
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

type DropRequest struct {
	Item DragItem `json:"item"`
	Date string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time string   `json:"time" validate:"omitempty,datetime=15:04"`
}

type DropResponse struct {
	Action  dragdrop.Action       `json:"action"`
	Skipped bool                  `json:"skipped"`
	Post    *models.ScheduledPost `json:"post,omitempty"`
}

// ToItem converts the wire payload into the typed drag item. A snapshot that
// cannot be decoded is dropped since it is only used for display.
func (d DragItem) ToItem() (dragdrop.Item, error) {
	switch dragdrop.Kind(d.Kind) {
	case dragdrop.KindScheduled:
		item := dragdrop.ScheduledItem{ID: d.ID}
		if len(d.Snapshot) > 0 {
			var snap models.ScheduledPost
			if err := json.Unmarshal(d.Snapshot, &snap); err == nil {
				item.Snapshot = &snap
			}
		}
		return item, nil
	case dragdrop.KindDraft:
		item := dragdrop.DraftItem{ID: d.ID}
		if len(d.Snapshot) > 0 {
			var snap models.DraftPost
			if err := json.Unmarshal(d.Snapshot, &snap); err == nil {
				item.Snapshot = &snap
			}
		}
		return item, nil
	default:
		return nil, fmt.Errorf("unknown drag item kind %q", d.Kind)
	}
}
