package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentEmbed ContentType = "embed"
)

// Valid reports whether c is one of the supported content types.
func (c ContentType) Valid() bool {
	switch c {
	case ContentText, ContentImage, ContentEmbed:
		return true
	}
	return false
}

type Annotation struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	OwnerID     uuid.UUID
	Timestamp   int
	ContentType ContentType
	Content     string
	Title       sql.NullString
	Order       int
	// Seq is assigned by the store and increases with creation order.
	Seq       int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Annotation) Owner() uuid.UUID {
	return a.OwnerID
}

// Label is the short text shown for the annotation on a timeline.
func (a *Annotation) Label() string {
	if a.Title.Valid && a.Title.String != "" {
		return a.Title.String
	}
	r := []rune(a.Content)
	if len(r) > 50 {
		return string(r[:50])
	}
	return a.Content
}
