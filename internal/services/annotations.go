package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"youact-backend/internal/database"
	"youact-backend/internal/models"
	"youact-backend/internal/timeline"
)

type AnnotationService struct {
	store  database.Store
	logger *log.Logger
	now    func() time.Time
}

func NewAnnotationService(store database.Store, logger *log.Logger) *AnnotationService {
	return &AnnotationService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates req and adds the annotation to a project owned by actor.
func (s *AnnotationService) Create(ctx context.Context, actor uuid.UUID, req models.CreateAnnotationRequest) (*models.Annotation, error) {
	if req.ProjectID == "" || req.Timestamp == nil || strings.TrimSpace(req.Content) == "" {
		return nil, invalid("", "project id, timestamp, and content are required")
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, invalid("projectId", "invalid project id")
	}
	if err := checkTimestamp(*req.Timestamp); err != nil {
		return nil, err
	}
	if err := checkLen(req.Content, MaxAnnotationContentLength, "content"); err != nil {
		return nil, err
	}
	if err := checkLen(req.Title, MaxAnnotationTitleLength, "title"); err != nil {
		return nil, err
	}
	contentType, err := parseContentType(req.ContentType)
	if err != nil {
		return nil, err
	}

	project, err := ownedProject(ctx, s.store, actor, projectID, "add annotations to")
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	annotation := &models.Annotation{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		OwnerID:     actor,
		Timestamp:   *req.Timestamp,
		ContentType: contentType,
		Content:     req.Content,
		Title:       nullString(req.Title),
		Order:       req.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateAnnotation(ctx, annotation); err != nil {
		return nil, internal("create annotation", err)
	}

	s.logger.Debug("annotation created", "annotation_id", annotation.ID, "project_id", project.ID, "timestamp", annotation.Timestamp)
	return annotation, nil
}

// ListByProject returns the project's full timeline: timestamp ascending,
// then creation order.
func (s *AnnotationService) ListByProject(ctx context.Context, actor, projectID uuid.UUID) ([]models.Annotation, error) {
	if _, err := ownedProject(ctx, s.store, actor, projectID, "access"); err != nil {
		return nil, err
	}

	annotations, err := s.store.ListAnnotations(ctx, projectID)
	if err != nil {
		return nil, internal("list annotations", err)
	}
	timeline.Sort(annotations)
	return annotations, nil
}

// Timeline evaluates the project's current annotations at currentTime.
func (s *AnnotationService) Timeline(ctx context.Context, actor, projectID uuid.UUID, currentTime int) (timeline.View, error) {
	if currentTime < 0 {
		return timeline.View{}, invalid("t", "current time cannot be negative")
	}
	annotations, err := s.ListByProject(ctx, actor, projectID)
	if err != nil {
		return timeline.View{}, err
	}
	return timeline.Compute(annotations, currentTime), nil
}

// Update applies the fields present in req. Only the annotation's owner may
// update it.
func (s *AnnotationService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateAnnotationRequest) (*models.Annotation, error) {
	annotation, err := ownedAnnotation(ctx, s.store, actor, id, "update")
	if err != nil {
		return nil, err
	}

	if req.Content.Set {
		if strings.TrimSpace(req.Content.Value) == "" {
			return nil, invalid("content", "content is required")
		}
		if err := checkLen(req.Content.Value, MaxAnnotationContentLength, "content"); err != nil {
			return nil, err
		}
		annotation.Content = req.Content.Value
	}
	if req.Title.Set {
		if err := checkLen(req.Title.Value, MaxAnnotationTitleLength, "title"); err != nil {
			return nil, err
		}
		annotation.Title = nullString(req.Title.Value)
	}
	if req.Timestamp.Set {
		if req.Timestamp.Null {
			return nil, invalid("timestamp", "timestamp is required")
		}
		if err := checkTimestamp(req.Timestamp.Value); err != nil {
			return nil, err
		}
		annotation.Timestamp = req.Timestamp.Value
	}
	if req.ContentType.Set {
		contentType, err := parseContentType(req.ContentType.Value)
		if err != nil {
			return nil, err
		}
		annotation.ContentType = contentType
	}
	if req.Order.Set {
		annotation.Order = req.Order.Value
	}
	annotation.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateAnnotation(ctx, annotation); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrAnnotationNotFound
		}
		return nil, internal("update annotation", err)
	}
	return annotation, nil
}

// Delete removes one annotation. Deleting an annotation that is already gone
// fails with ErrAnnotationNotFound.
func (s *AnnotationService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	annotation, err := ownedAnnotation(ctx, s.store, actor, id, "delete")
	if err != nil {
		return err
	}

	if err := s.store.DeleteAnnotation(ctx, annotation.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrAnnotationNotFound
		}
		return internal("delete annotation", err)
	}
	return nil
}

func checkTimestamp(seconds int) error {
	if seconds < 0 {
		return invalid("timestamp", "timestamp cannot be negative")
	}
	return nil
}

// parseContentType maps "" to text and rejects anything outside the enum.
func parseContentType(raw string) (models.ContentType, error) {
	if raw == "" {
		return models.ContentText, nil
	}
	ct := models.ContentType(raw)
	if !ct.Valid() {
		return "", invalid("contentType", "content type must be one of text, image, embed")
	}
	return ct, nil
}
