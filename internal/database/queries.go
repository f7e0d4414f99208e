package database

import (
	"database/sql"
	"errors"

	"youact-backend/internal/models"
)

const projectColumns = `id, owner_id, title, description, video_link, video_id, thumbnail, duration, is_public, created_at, updated_at`

const annotationColumns = `id, project_id, owner_id, position_seconds, content_type, content, title, sort_order, seq, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.VideoLink, &p.VideoID,
		&p.Thumbnail, &p.Duration, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanAnnotation(row rowScanner) (*models.Annotation, error) {
	var a models.Annotation
	var contentType string
	err := row.Scan(
		&a.ID, &a.ProjectID, &a.OwnerID, &a.Timestamp, &contentType, &a.Content,
		&a.Title, &a.Order, &a.Seq, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.ContentType = models.ContentType(contentType)
	return &a, nil
}

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
