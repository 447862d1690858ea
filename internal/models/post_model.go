package models

import "time"

type PostStatus string

const (
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
)

// DraftPost is authored content that has not been placed on the calendar yet.
type DraftPost struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Platforms []Platform `json:"platforms"`
	Media     []string   `json:"media"`
	CreatedAt time.Time  `json:"created_at"`
}

// ScheduledPost is content bound to a calendar slot. ScheduledAt always has
// the form YYYY-MM-DDTHH:MM.
type ScheduledPost struct {
	ID          string     `json:"id"`
	Content     string     `json:"content"`
	Platforms   []Platform `json:"platforms"`
	Media       []string   `json:"media"`
	ScheduledAt string     `json:"scheduled_at"`
	Status      PostStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MediaAsset struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

func (d *DraftPost) Clone() *DraftPost {
	c := *d
	c.Platforms = append([]Platform(nil), d.Platforms...)
	c.Media = append([]string{}, d.Media...)
	return &c
}

func (p *ScheduledPost) Clone() *ScheduledPost {
	c := *p
	c.Platforms = append([]Platform(nil), p.Platforms...)
	c.Media = append([]string{}, p.Media...)
	return &c
}

// IsFinal reports whether the publisher has already settled the post.
func (p *ScheduledPost) IsFinal() bool {
	return p.Status == PostStatusPublished || p.Status == PostStatusFailed
}
