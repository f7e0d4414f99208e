package services

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"youact-backend/internal/database"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageService stores images referenced by image annotations.
type ImageService struct {
	store    database.Store
	images   ImageStore
	maxBytes int64
	logger   *log.Logger
}

// NewImageService builds the service. images may be nil, in which case every
// upload fails with ErrStorageUnavailable.
func NewImageService(store database.Store, images ImageStore, maxBytes int64, logger *log.Logger) *ImageService {
	return &ImageService{
		store:    store,
		images:   images,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// MaxBytes is the largest accepted upload.
func (s *ImageService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload stores data under the project and returns its storage path and public URL.
func (s *ImageService) Upload(ctx context.Context, actor, projectID uuid.UUID, data []byte) (string, string, error) {
	if s.images == nil {
		return "", "", ErrStorageUnavailable
	}

	project, err := ownedProject(ctx, s.store, actor, projectID, "add images to")
	if err != nil {
		return "", "", err
	}

	if len(data) == 0 {
		return "", "", invalid("image", "image is empty")
	}
	if int64(len(data)) > s.maxBytes {
		return "", "", invalid("image", "image must be %d bytes or smaller", s.maxBytes)
	}
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", invalid("image", "unsupported image type %s", contentType)
	}

	filename := uuid.New().String() + ext
	storagePath, url, err := s.images.UploadFile(project.OwnerID, project.ID, filename, data, contentType)
	if err != nil {
		return "", "", internal("upload image", err)
	}

	s.logger.Info("image uploaded", "project_id", project.ID, "path", storagePath, "bytes", len(data))
	return storagePath, url, nil
}
