package transfer

type DraftCreation struct {
	Content   string   `json:"content" validate:"not_blank"`
	Platforms []string `json:"platforms" validate:"min=1,dive,platform"`
	Media     []string `json:"media" validate:"dive,required"`
}

type PostCreation struct {
	DraftCreation
	ScheduledAt string `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04"`
}

type MoveRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type PromoteRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"omitempty,datetime=15:04"`
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=published failed"`
	Error  string `json:"error"`
}
