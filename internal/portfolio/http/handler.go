package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/gin-gonic/gin"
)

type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, p domain.NewProject) (int64, error)
}

type TestimonialStore interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
	ListFeatured(ctx context.Context) ([]domain.Testimonial, error)
	Create(ctx context.Context, t domain.NewTestimonial) (int64, error)
}

type ContactStore interface {
	Create(ctx context.Context, c domain.NewContact) (int64, error)
	List(ctx context.Context) ([]domain.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

// Handler bundles the dependencies for the portfolio REST endpoints.
type Handler struct {
	projects     ProjectStore
	testimonials TestimonialStore
	contacts     ContactStore
}

func New(projects ProjectStore, testimonials TestimonialStore, contacts ContactStore) *Handler {
	return &Handler{
		projects:     projects,
		testimonials: testimonials,
		contacts:     contacts,
	}
}

// storeFailure logs err and answers with the generic 500 envelope. The
// underlying error never reaches the caller.
func storeFailure(c *gin.Context, op string, err error, message string) {
	l := logger.New(c.Request.Context())
	if errors.Is(err, domain.ErrStoreTimeout) {
		l.LogErrorf(op, "store timeout: %v", err)
	} else {
		l.LogError(op, err)
	}
	response.Fail(c, http.StatusInternalServerError, message)
}
