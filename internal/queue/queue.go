package queue

import (
	"fmt"

	"github.com/maheshrc27/postcalendar/internal/models"
)

const TaskTypePublishPost = "publish:post"

// PublishPostPayload pins the slot the task was enqueued for so a task left
// behind by a move can be recognised as stale.
type PublishPostPayload struct {
	PostID      string `json:"post_id"`
	ScheduledAt string `json:"scheduled_at"`
}

func TaskID(post *models.ScheduledPost) string {
	return fmt.Sprintf("%s:%s:%s", TaskTypePublishPost, post.ID, post.ScheduledAt)
}
