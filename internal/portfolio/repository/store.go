package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const defaultQueryTimeout = 5 * time.Second

// store is embedded by every repository. Each call runs under timeout, which
// bounds both waiting for a pooled connection and the statement itself.
type store struct {
	db      *sql.DB
	timeout time.Duration
}

func newStore(db *sql.DB, timeout time.Duration) store {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return store{db: db, timeout: timeout}
}

func (s store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// wrap annotates err with op and maps deadline expiry to domain.ErrStoreTimeout.
func wrap(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreTimeout, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// insertReturningID runs an INSERT ... RETURNING id statement.
func (s store) insertReturningID(ctx context.Context, op, query string, args ...any) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrap(ctx, op, err)
	}
	return id, nil
}
