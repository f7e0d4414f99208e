package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"youact-backend/internal/models"
)

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// DB exposes the underlying pool, used by the migrator.
func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) CreateProject(ctx context.Context, p *models.Project) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.OwnerID, p.Title, p.Description, p.VideoLink, p.VideoID,
		p.Thumbnail, p.Duration, p.IsPublic, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1
	`, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", notFound(err))
	}
	return p, nil
}

func (s *PostgresStore) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

func (s *PostgresStore) UpdateProject(ctx context.Context, p *models.Project) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET title = $1, description = $2, video_link = $3, video_id = $4,
		    thumbnail = $5, is_public = $6, updated_at = $7
		WHERE id = $8
	`, p.Title, p.Description, p.VideoLink, p.VideoID, p.Thumbnail, p.IsPublic, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return affected(res, "update project")
}

func (s *PostgresStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return affected(res, "delete project")
}

func (s *PostgresStore) CreateAnnotation(ctx context.Context, a *models.Annotation) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO annotations (id, project_id, owner_id, position_seconds, content_type, content, title, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq
	`, a.ID, a.ProjectID, a.OwnerID, a.Timestamp, string(a.ContentType), a.Content,
		a.Title, a.Order, a.CreatedAt, a.UpdatedAt).Scan(&a.Seq)
	if err != nil {
		return fmt.Errorf("failed to create annotation: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetAnnotation(ctx context.Context, id uuid.UUID) (*models.Annotation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+annotationColumns+`
		FROM annotations
		WHERE id = $1
	`, id)
	a, err := scanAnnotation(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get annotation: %w", notFound(err))
	}
	return a, nil
}

func (s *PostgresStore) ListAnnotations(ctx context.Context, projectID uuid.UUID) ([]models.Annotation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+annotationColumns+`
		FROM annotations
		WHERE project_id = $1
		ORDER BY position_seconds ASC, created_at ASC, seq ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list annotations: %w", err)
	}
	defer rows.Close()

	annotations := []models.Annotation{}
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		annotations = append(annotations, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list annotations: %w", err)
	}

	return annotations, nil
}

func (s *PostgresStore) UpdateAnnotation(ctx context.Context, a *models.Annotation) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE annotations
		SET position_seconds = $1, content_type = $2, content = $3, title = $4, sort_order = $5, updated_at = $6
		WHERE id = $7
	`, a.Timestamp, string(a.ContentType), a.Content, a.Title, a.Order, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update annotation: %w", err)
	}
	return affected(res, "update annotation")
}

func (s *PostgresStore) DeleteAnnotation(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM annotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete annotation: %w", err)
	}
	return affected(res, "delete annotation")
}

func (s *PostgresStore) DeleteAnnotationsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM annotations WHERE project_id = $1`, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project annotations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete project annotations: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func affected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("failed to %s: %w", op, ErrNotFound)
	}
	return nil
}
