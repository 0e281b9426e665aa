// Package view turns fetched portfolio data into render-ready view models.
// Nothing here touches HTTP, templates or the clock directly.
package view

import "github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"

const (
	ComingSoonLabel  = "Coming Soon"
	PlaceholderImage = "/static/img/placeholder.svg"
)

// Link is an anchor on a project card. A link with no URL points at "#"
// and does not open a new tab.
type Link struct {
	Label  string
	Href   string
	NewTab bool
}

type ProjectCard struct {
	Title       string
	Description string
	Tags        []string
	Github      Link
	Demo        Link
	ImageURL    string
	ImageAlt    string
}

func ProjectCards(projects []domain.Project) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		tags := make([]string, 0, len(p.Technologies))
		tags = append(tags, p.Technologies...)

		cards = append(cards, ProjectCard{
			Title:       p.Title,
			Description: p.Description,
			Tags:        tags,
			Github:      link(p.GithubURL, "GitHub Repo"),
			Demo:        link(p.LiveDemoURL, "Live Demo"),
			ImageURL:    orDefault(p.ImageURL, PlaceholderImage),
			ImageAlt:    p.Title,
		})
	}
	return cards
}

func link(url *string, label string) Link {
	if url == nil || *url == "" {
		return Link{Label: ComingSoonLabel, Href: "#"}
	}
	return Link{Label: label, Href: *url, NewTab: true}
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
