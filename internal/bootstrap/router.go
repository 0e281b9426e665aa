package bootstrap

import (
	"database/sql"
	"log"
	"path/filepath"
	"time"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	portfoliohttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/site"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	DB           *sql.DB
	Pinger       httpapi.Pinger
	QueryTimeout time.Duration
	StaticDir    string
	TemplateDir  string
	CORSOrigins  []string
	AdminAPIKey  string
}

// BuildRouter wires the static route table. It is called once at startup.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.NoRoute(response.NotFound)

	projectRepo := repository.NewProjectRepository(dep.DB, dep.QueryTimeout)
	testimonialRepo := repository.NewTestimonialRepository(dep.DB, dep.QueryTimeout)
	contactRepo := repository.NewContactRepository(dep.DB, dep.QueryTimeout)

	api := r.Group("/api")

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Pinger)
	healthHandler.RegisterRoutes(api)

	portfolioHandler := portfoliohttp.New(projectRepo, testimonialRepo, contactRepo)
	portfolioHandler.Register(api, middleware.AdminKey(dep.AdminAPIKey))

	if dep.StaticDir != "" {
		r.Static("/static", dep.StaticDir)
	}

	if dep.TemplateDir != "" {
		pattern := filepath.Join(dep.TemplateDir, "*.html")
		if matches, _ := filepath.Glob(pattern); len(matches) > 0 {
			r.LoadHTMLGlob(pattern)
			loader := site.NewLoader(site.RepoSource{Projects: projectRepo, Testimonials: testimonialRepo})
			site.NewHandler(loader, "/api").Register(r)
		} else {
			log.Printf("[warn] no templates found at %s, root page disabled", pattern)
		}
	}

	return r
}
