package http

import "github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"

const msgInvalidBody = "Invalid request body"

type createProjectReq struct {
	Title        *string  `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url"`
	GithubURL    *string  `json:"github_url"`
	LiveDemoURL  *string  `json:"live_demo_url"`
	Technologies []string `json:"technologies"`
	Featured     *bool    `json:"featured"`
}

func (r createProjectReq) toDomain() domain.NewProject {
	return domain.NewProject{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		GithubURL:    r.GithubURL,
		LiveDemoURL:  r.LiveDemoURL,
		Technologies: domain.Technologies(r.Technologies),
		Featured:     r.Featured != nil && *r.Featured,
	}
}

type createTestimonialReq struct {
	ClientName      *string  `json:"client_name"`
	ClientPosition  *string  `json:"client_position"`
	ClientCompany   *string  `json:"client_company"`
	TestimonialText *string  `json:"testimonial_text"`
	ClientImageURL  *string  `json:"client_image_url"`
	Rating          *float64 `json:"rating"`
	Featured        *bool    `json:"featured"`
}

func (r createTestimonialReq) toDomain() domain.NewTestimonial {
	return domain.NewTestimonial{
		ClientName:      r.ClientName,
		ClientPosition:  r.ClientPosition,
		ClientCompany:   r.ClientCompany,
		TestimonialText: r.TestimonialText,
		ClientImageURL:  r.ClientImageURL,
		Rating:          r.Rating,
		Featured:        r.Featured != nil && *r.Featured,
	}
}

type createContactReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

type updateStatusReq struct {
	Status string `json:"status"`
}
