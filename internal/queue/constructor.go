package queue

import (
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/maheshrc27/postcalendar/internal/service"
)

// Queue consumes publish tasks.
type Queue struct {
	pr        repository.PostRepository
	publisher service.Publisher
}

func NewQueue(pr repository.PostRepository, publisher service.Publisher) *Queue {
	return &Queue{
		pr:        pr,
		publisher: publisher,
	}
}
