package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// ContactRepository handles PostgreSQL operations for contact messages
type ContactRepository struct {
	store
}

func NewContactRepository(db *sql.DB, timeout time.Duration) *ContactRepository {
	return &ContactRepository{store: newStore(db, timeout)}
}

// Create stores a new message with status "new".
func (r *ContactRepository) Create(ctx context.Context, c domain.NewContact) (int64, error) {
	query := `
		INSERT INTO contacts (full_name, email, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.insertReturningID(ctx, "create contact", query,
		c.FullName,
		c.Email,
		c.Subject,
		c.Message,
		string(domain.ContactStatusNew),
	)
}

// List returns every message, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const op = "list contacts"
	query := `
		SELECT id, full_name, email, subject, message, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.Contact, 0, 16)
	for rows.Next() {
		var (
			c       domain.Contact
			subject sql.NullString
			status  string
		)
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &subject, &c.Message, &status, &c.CreatedAt); err != nil {
			return nil, wrap(ctx, op, err)
		}
		c.Subject = subject.String
		c.Status = domain.ContactStatus(status)
		out = append(out, c)
	}
	return out, wrap(ctx, op, rows.Err())
}

// UpdateStatus sets the status of contact id. An unknown id is not an error.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	if _, err := domain.ParseContactStatus(string(status)); err != nil {
		return err
	}

	query := `UPDATE contacts SET status = $1 WHERE id = $2`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, string(status), id); err != nil {
		return wrap(ctx, "update contact status", err)
	}
	return nil
}
