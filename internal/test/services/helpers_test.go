package services_test

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"youact-backend/internal/database"
	"youact-backend/internal/models"
)

var errBoom = errors.New("boom")

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func intPtr(v int) *int { return &v }

// flakyStore wraps the memory store and fails the operations named in its
// switches.
type flakyStore struct {
	*database.MemoryStore
	failBulkDelete    bool
	failProjectDelete bool
	failGet           bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: database.NewMemoryStore()}
}

func (s *flakyStore) DeleteAnnotationsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if s.failBulkDelete {
		return 0, errBoom
	}
	return s.MemoryStore.DeleteAnnotationsByProject(ctx, projectID)
}

func (s *flakyStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if s.failProjectDelete {
		return errBoom
	}
	return s.MemoryStore.DeleteProject(ctx, id)
}

func (s *flakyStore) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	if s.failGet {
		return nil, errBoom
	}
	return s.MemoryStore.GetProject(ctx, id)
}

type uploadedFile struct {
	UserID, ProjectID uuid.UUID
	Filename          string
	ContentType       string
	Size              int
}

// fakeImages is an in-memory ImageStore.
type fakeImages struct {
	mu        sync.Mutex
	uploads   []uploadedFile
	purged    []uuid.UUID
	uploadErr error
	purgeErr  error
}

func (f *fakeImages) UploadFile(userID, projectID uuid.UUID, filename string, data []byte, contentType string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	f.uploads = append(f.uploads, uploadedFile{userID, projectID, filename, contentType, len(data)})
	path := "users/" + userID.String() + "/projects/" + projectID.String() + "/" + filename
	return path, "https://cdn.example/" + path, nil
}

func (f *fakeImages) DeleteProjectFiles(userID, projectID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purged = append(f.purged, projectID)
	return f.purgeErr
}
