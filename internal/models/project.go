package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"youact-backend/internal/youtube"
)

type Project struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description sql.NullString
	VideoLink   string
	VideoID     string
	Thumbnail   sql.NullString
	Duration    int
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Owner returns the identity allowed to mutate the project.
func (p *Project) Owner() uuid.UUID {
	return p.OwnerID
}

// SetVideoLink stores link and re-derives VideoID and Thumbnail from it.
// The derived fields have no other setter.
func (p *Project) SetVideoLink(link string) {
	ref := youtube.Resolve(link)
	p.VideoLink = link
	p.VideoID = ref.VideoID
	p.Thumbnail = sql.NullString{String: ref.Thumbnail, Valid: ref.HasVideo()}
}
