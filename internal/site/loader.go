package site

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site/view"
	"golang.org/x/sync/errgroup"
)

// FeaturedSource yields the featured lists shown on the landing page. It is
// implemented by the API client and by RepoSource.
type FeaturedSource interface {
	FeaturedProjects(ctx context.Context) ([]domain.Project, error)
	FeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error)
}

type projectLister interface {
	ListFeatured(ctx context.Context) ([]domain.Project, error)
}

type testimonialLister interface {
	ListFeatured(ctx context.Context) ([]domain.Testimonial, error)
}

// RepoSource reads the featured lists straight from the repositories.
type RepoSource struct {
	Projects     projectLister
	Testimonials testimonialLister
}

func (s RepoSource) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	return s.Projects.ListFeatured(ctx)
}

func (s RepoSource) FeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.Testimonials.ListFeatured(ctx)
}

// Featured is the render-ready content of the landing page. A nil section
// means it could not be loaded and the static placeholder should stay.
type Featured struct {
	Projects     []view.ProjectCard
	Testimonials []view.TestimonialSlot
}

type Loader struct {
	source FeaturedSource
}

func NewLoader(source FeaturedSource) *Loader {
	return &Loader{source: source}
}

// Load fetches both featured lists concurrently. The fetches are
// independent: a failure is logged and only blanks its own section.
func (l *Loader) Load(ctx context.Context) Featured {
	var (
		out Featured
		g   errgroup.Group
		log = logger.New(ctx)
	)

	g.Go(func() error {
		items, err := l.source.FeaturedProjects(ctx)
		if err != nil {
			log.LogError("load featured projects", err)
			return nil
		}
		if len(items) > 0 {
			out.Projects = view.ProjectCards(items)
		}
		return nil
	})

	g.Go(func() error {
		items, err := l.source.FeaturedTestimonials(ctx)
		if err != nil {
			log.LogError("load featured testimonials", err)
			return nil
		}
		if len(items) > 0 {
			out.Testimonials = view.PairTestimonials(items)
		}
		return nil
	})

	_ = g.Wait()
	return out
}
