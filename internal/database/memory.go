package database

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"youact-backend/internal/models"
)

// MemoryStore keeps everything in process memory. It is used when no
// DATABASE_URL is configured and in tests.
type MemoryStore struct {
	mu          sync.RWMutex
	projects    map[uuid.UUID]models.Project
	annotations map[uuid.UUID]models.Annotation
	seq         int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects:    make(map[uuid.UUID]models.Project),
		annotations: make(map[uuid.UUID]models.Annotation),
	}
}

func (s *MemoryStore) CreateProject(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = *p
	return nil
}

func (s *MemoryStore) GetProject(_ context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) ListProjects(_ context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := []models.Project{}
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			projects = append(projects, p)
		}
	}
	slices.SortFunc(projects, func(a, b models.Project) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return projects, nil
}

func (s *MemoryStore) UpdateProject(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.projects[p.ID]
	if !ok {
		return ErrNotFound
	}
	// Owner, duration and creation time are not updatable.
	updated := *p
	updated.OwnerID = existing.OwnerID
	updated.Duration = existing.Duration
	updated.CreatedAt = existing.CreatedAt
	s.projects[p.ID] = updated
	return nil
}

func (s *MemoryStore) DeleteProject(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *MemoryStore) CreateAnnotation(_ context.Context, a *models.Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	a.Seq = s.seq
	s.annotations[a.ID] = *a
	return nil
}

func (s *MemoryStore) GetAnnotation(_ context.Context, id uuid.UUID) (*models.Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.annotations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemoryStore) ListAnnotations(_ context.Context, projectID uuid.UUID) ([]models.Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	annotations := []models.Annotation{}
	for _, a := range s.annotations {
		if a.ProjectID == projectID {
			annotations = append(annotations, a)
		}
	}
	slices.SortFunc(annotations, func(a, b models.Annotation) int {
		return cmp.Or(
			cmp.Compare(a.Timestamp, b.Timestamp),
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.Seq, b.Seq),
		)
	})
	return annotations, nil
}

func (s *MemoryStore) UpdateAnnotation(_ context.Context, a *models.Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.annotations[a.ID]
	if !ok {
		return ErrNotFound
	}
	updated := *a
	updated.ProjectID = existing.ProjectID
	updated.OwnerID = existing.OwnerID
	updated.Seq = existing.Seq
	updated.CreatedAt = existing.CreatedAt
	s.annotations[a.ID] = updated
	return nil
}

func (s *MemoryStore) DeleteAnnotation(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.annotations[id]; !ok {
		return ErrNotFound
	}
	delete(s.annotations, id)
	return nil
}

func (s *MemoryStore) DeleteAnnotationsByProject(_ context.Context, projectID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, a := range s.annotations {
		if a.ProjectID == projectID {
			delete(s.annotations, id)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
