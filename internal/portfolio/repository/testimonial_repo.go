package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const testimonialColumns = `id, client_name, client_position, client_company, testimonial_text, client_image_url, rating, featured, created_at`

// TestimonialRepository handles PostgreSQL operations for testimonials
type TestimonialRepository struct {
	store
}

func NewTestimonialRepository(db *sql.DB, timeout time.Duration) *TestimonialRepository {
	return &TestimonialRepository{store: newStore(db, timeout)}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	query := `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		ORDER BY featured DESC, created_at DESC
	`
	return r.query(ctx, "list testimonials", query)
}

func (r *TestimonialRepository) ListFeatured(ctx context.Context) ([]domain.Testimonial, error) {
	query := `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE featured = TRUE
		ORDER BY created_at DESC
	`
	return r.query(ctx, "list featured testimonials", query)
}

func (r *TestimonialRepository) Create(ctx context.Context, t domain.NewTestimonial) (int64, error) {
	query := `
		INSERT INTO testimonials (client_name, client_position, client_company, testimonial_text, client_image_url, rating, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.insertReturningID(ctx, "create testimonial", query,
		t.ClientName,
		t.ClientPosition,
		t.ClientCompany,
		t.TestimonialText,
		t.ClientImageURL,
		t.Rating,
		t.Featured,
	)
}

func (r *TestimonialRepository) query(ctx context.Context, op, query string) ([]domain.Testimonial, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.Testimonial, 0, 16)
	for rows.Next() {
		var (
			t      domain.Testimonial
			rating sql.NullFloat64
		)
		if err := rows.Scan(
			&t.ID,
			&t.ClientName,
			&t.ClientPosition,
			&t.ClientCompany,
			&t.TestimonialText,
			&t.ClientImageURL,
			&rating,
			&t.Featured,
			&t.CreatedAt,
		); err != nil {
			return nil, wrap(ctx, op, err)
		}
		if rating.Valid {
			v := rating.Float64
			t.Rating = &v
		}
		out = append(out, t)
	}
	return out, wrap(ctx, op, rows.Err())
}
