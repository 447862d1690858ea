package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewID returns a 21 character URL-safe random id.
func NewID() (string, error) {
	return gonanoid.New()
}

// NewObjectKey returns a shorter id used for stored media objects.
func NewObjectKey() (string, error) {
	return gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 16)
}
