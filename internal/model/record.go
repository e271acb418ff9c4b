package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is the domain model for one annotated note.
// Kept minimal on purpose; it’s easy to evolve.
type Record struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Done      bool      `json:"done"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// New builds a Record with a fresh ID and creation time.
// Content and tag are trimmed; validity is checked separately.
func New(content, tag string) Record {
	return Record{
		ID:        uuid.NewString(),
		Content:   strings.TrimSpace(content),
		Tag:       strings.TrimSpace(tag),
		CreatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the record can be persisted.
func (r Record) Valid() bool { return r.Content != "" }
