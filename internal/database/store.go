// Package database persists projects and annotations.
//
// Each method is a single atomic operation on one record, or on one set of
// records in the case of DeleteAnnotationsByProject. No method spans several
// of these operations in a transaction.
package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"youact-backend/internal/models"
)

// ErrNotFound is returned when the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

type Store interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	// ListProjects returns the owner's projects, newest first.
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// CreateAnnotation inserts annotation and assigns its Seq.
	CreateAnnotation(ctx context.Context, annotation *models.Annotation) error
	GetAnnotation(ctx context.Context, id uuid.UUID) (*models.Annotation, error)
	// ListAnnotations returns a project's annotations by timestamp, then creation order.
	ListAnnotations(ctx context.Context, projectID uuid.UUID) ([]models.Annotation, error)
	UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error
	DeleteAnnotation(ctx context.Context, id uuid.UUID) error
	// DeleteAnnotationsByProject removes every annotation of a project and
	// returns how many were removed.
	DeleteAnnotationsByProject(ctx context.Context, projectID uuid.UUID) (int64, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
