package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"youact-backend/internal/database"
	"youact-backend/internal/models"
)

type owned interface {
	Owner() uuid.UUID
}

// authorize is the single access rule for every resource: the lookup must
// have found it (else missing), and only then must actor be its owner.
func authorize[T owned](res T, lookupErr error, actor uuid.UUID, missing error, action, resource string) (T, error) {
	var zero T
	if lookupErr != nil {
		if errors.Is(lookupErr, database.ErrNotFound) {
			return zero, missing
		}
		return zero, internal("load "+resource, lookupErr)
	}
	if res.Owner() != actor {
		return zero, &AccessError{Action: action, Resource: resource}
	}
	return res, nil
}

func ownedProject(ctx context.Context, store database.Store, actor, id uuid.UUID, action string) (*models.Project, error) {
	p, err := store.GetProject(ctx, id)
	return authorize(p, err, actor, ErrProjectNotFound, action, "project")
}

func ownedAnnotation(ctx context.Context, store database.Store, actor, id uuid.UUID, action string) (*models.Annotation, error) {
	a, err := store.GetAnnotation(ctx, id)
	return authorize(a, err, actor, ErrAnnotationNotFound, action, "annotation")
}
