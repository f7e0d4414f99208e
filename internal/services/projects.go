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
	"youact-backend/internal/youtube"
)

// ImageStore holds uploaded annotation images, grouped per project.
type ImageStore interface {
	UploadFile(userID, projectID uuid.UUID, filename string, data []byte, contentType string) (storagePath, publicURL string, err error)
	DeleteProjectFiles(userID, projectID uuid.UUID) error
}

type ProjectService struct {
	store  database.Store
	images ImageStore
	logger *log.Logger
	now    func() time.Time
}

// NewProjectService builds the service. images may be nil when image storage
// is not configured.
func NewProjectService(store database.Store, images ImageStore, logger *log.Logger) *ProjectService {
	return &ProjectService{
		store:  store,
		images: images,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ProjectService) Create(ctx context.Context, ownerID uuid.UUID, req models.CreateProjectRequest) (*models.Project, error) {
	title, err := projectTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if err := checkLen(req.Description, MaxProjectDescriptionLength, "description"); err != nil {
		return nil, err
	}
	link, err := videoLink(req.VideoLink)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	project := &models.Project{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: nullString(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	project.SetVideoLink(link)

	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, internal("create project", err)
	}

	if project.VideoID == "" {
		s.logger.Warn("video id could not be resolved", "project_id", project.ID, "video_link", link)
	}
	s.logger.Info("project created", "project_id", project.ID, "owner_id", ownerID, "video_id", project.VideoID)
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, actor, id uuid.UUID) (*models.Project, error) {
	return ownedProject(ctx, s.store, actor, id, "access")
}

func (s *ProjectService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	projects, err := s.store.ListProjects(ctx, ownerID)
	if err != nil {
		return nil, internal("list projects", err)
	}
	return projects, nil
}

// Update applies the fields present in req. The video id and thumbnail are
// re-derived whenever a link is supplied.
func (s *ProjectService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateProjectRequest) (*models.Project, error) {
	project, err := ownedProject(ctx, s.store, actor, id, "update")
	if err != nil {
		return nil, err
	}

	if req.Title.Set {
		title, err := projectTitle(req.Title.Value)
		if err != nil {
			return nil, err
		}
		project.Title = title
	}
	if req.Description.Set {
		if err := checkLen(req.Description.Value, MaxProjectDescriptionLength, "description"); err != nil {
			return nil, err
		}
		project.Description = nullString(req.Description.Value)
	}
	if req.VideoLink.Set {
		link, err := videoLink(req.VideoLink.Value)
		if err != nil {
			return nil, err
		}
		project.SetVideoLink(link)
	}
	if req.IsPublic.Set {
		project.IsPublic = req.IsPublic.Value
	}
	project.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateProject(ctx, project); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, internal("update project", err)
	}
	return project, nil
}

// Delete removes a project in two steps: its annotations first, then the
// project itself. The steps are not atomic. If the second one fails the
// project survives with no annotations and the error is returned.
func (s *ProjectService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	project, err := ownedProject(ctx, s.store, actor, id, "delete")
	if err != nil {
		return err
	}

	n, err := s.store.DeleteAnnotationsByProject(ctx, project.ID)
	if err != nil {
		return internal("delete project annotations", err)
	}
	s.logger.Info("purged project annotations", "project_id", project.ID, "count", n)

	if s.images != nil {
		if err := s.images.DeleteProjectFiles(project.OwnerID, project.ID); err != nil {
			s.logger.Warn("failed to purge project images", "project_id", project.ID, "err", err)
		}
	}

	if err := s.store.DeleteProject(ctx, project.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrProjectNotFound
		}
		s.logger.Error("project delete failed after annotation purge", "project_id", project.ID, "err", err)
		return internal("delete project", err)
	}

	s.logger.Info("project deleted", "project_id", project.ID)
	return nil
}

func projectTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", invalid("title", "title is required")
	}
	if err := checkLen(title, MaxProjectTitleLength, "title"); err != nil {
		return "", err
	}
	return title, nil
}

func videoLink(raw string) (string, error) {
	link := strings.TrimSpace(raw)
	if link == "" {
		return "", invalid("videoLink", "video link is required")
	}
	if !youtube.IsLink(link) {
		return "", invalid("videoLink", "please provide a valid YouTube link")
	}
	return link, nil
}
