package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const projectColumns = `id, title, description, image_url, github_url, live_demo_url, technologies, featured, created_at`

// ProjectRepository handles PostgreSQL operations for projects
type ProjectRepository struct {
	store
}

func NewProjectRepository(db *sql.DB, timeout time.Duration) *ProjectRepository {
	return &ProjectRepository{store: newStore(db, timeout)}
}

// List returns every project, featured first, newest first within each group.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY featured DESC, created_at DESC
	`
	return r.query(ctx, "list projects", query)
}

// ListFeatured returns featured projects, newest first.
func (r *ProjectRepository) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE featured = TRUE
		ORDER BY created_at DESC
	`
	return r.query(ctx, "list featured projects", query)
}

func (r *ProjectRepository) Create(ctx context.Context, p domain.NewProject) (int64, error) {
	query := `
		INSERT INTO projects (title, description, image_url, github_url, live_demo_url, technologies, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.insertReturningID(ctx, "create project", query,
		p.Title,
		p.Description,
		p.ImageURL,
		p.GithubURL,
		p.LiveDemoURL,
		p.Technologies,
		p.Featured,
	)
}

func (r *ProjectRepository) query(ctx context.Context, op, query string) ([]domain.Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var (
			p           domain.Project
			description sql.NullString
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&description,
			&p.ImageURL,
			&p.GithubURL,
			&p.LiveDemoURL,
			&p.Technologies,
			&p.Featured,
			&p.CreatedAt,
		); err != nil {
			return nil, wrap(ctx, op, err)
		}
		p.Description = description.String
		out = append(out, p)
	}
	return out, wrap(ctx, op, rows.Err())
}
