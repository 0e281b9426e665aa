package domain

import "time"

// Project is a portfolio entry shown in the projects section.
type Project struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	ImageURL     *string      `json:"image_url"`
	GithubURL    *string      `json:"github_url"`
	LiveDemoURL  *string      `json:"live_demo_url"`
	Technologies Technologies `json:"technologies"`
	Featured     bool         `json:"featured"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewProject carries the client-supplied fields of a project. A nil Title
// is sent to the store as NULL and rejected by its NOT NULL constraint.
type NewProject struct {
	Title        *string
	Description  string
	ImageURL     *string
	GithubURL    *string
	LiveDemoURL  *string
	Technologies Technologies
	Featured     bool
}

type Testimonial struct {
	ID              int64     `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientPosition  *string   `json:"client_position"`
	ClientCompany   *string   `json:"client_company"`
	TestimonialText string    `json:"testimonial_text"`
	ClientImageURL  *string   `json:"client_image_url"`
	Rating          *float64  `json:"rating"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"created_at"`
}

type NewTestimonial struct {
	ClientName      *string
	ClientPosition  *string
	ClientCompany   *string
	TestimonialText *string
	ClientImageURL  *string
	Rating          *float64
	Featured        bool
}

// Contact is a message left through the contact form.
type Contact struct {
	ID        int64         `json:"id"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type NewContact struct {
	FullName string
	Email    string
	Subject  string
	Message  string
}
