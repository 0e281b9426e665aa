package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// Client talks to the portfolio REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

// WithAPIKey sends key in X-API-Key on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:3000/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a well-formed error envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Health is the liveness payload.
type Health struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.doRaw(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	_, err := c.do(ctx, http.MethodGet, "/projects", nil, &out)
	return out, err
}

func (c *Client) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	_, err := c.do(ctx, http.MethodGet, "/projects/featured", nil, &out)
	return out, err
}

func (c *Client) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var out []domain.Testimonial
	_, err := c.do(ctx, http.MethodGet, "/testimonials", nil, &out)
	return out, err
}

func (c *Client) FeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var out []domain.Testimonial
	_, err := c.do(ctx, http.MethodGet, "/testimonials/featured", nil, &out)
	return out, err
}

// ProjectInput is the body of a create-project call.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url,omitempty"`
	GithubURL    *string  `json:"github_url,omitempty"`
	LiveDemoURL  *string  `json:"live_demo_url,omitempty"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (int64, error) {
	return c.create(ctx, "/projects", in)
}

type TestimonialInput struct {
	ClientName      string   `json:"client_name"`
	ClientPosition  *string  `json:"client_position,omitempty"`
	ClientCompany   *string  `json:"client_company,omitempty"`
	TestimonialText string   `json:"testimonial_text"`
	ClientImageURL  *string  `json:"client_image_url,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	Featured        bool     `json:"featured"`
}

func (c *Client) CreateTestimonial(ctx context.Context, in TestimonialInput) (int64, error) {
	return c.create(ctx, "/testimonials", in)
}

// ContactResult is the outcome of a contact submission.
type ContactResult struct {
	ID      int64
	Message string
}

// SubmitContact posts the contact form. A rejection by the server comes
// back as *APIError carrying the server's message.
func (c *Client) SubmitContact(ctx context.Context, fullName, email, subject, message string) (*ContactResult, error) {
	body := map[string]string{
		"full_name": fullName,
		"email":     email,
		"subject":   subject,
		"message":   message,
	}

	var data struct {
		ID int64 `json:"id"`
	}
	msg, err := c.do(ctx, http.MethodPost, "/contact", body, &data)
	if err != nil {
		return nil, err
	}
	return &ContactResult{ID: data.ID, Message: msg}, nil
}

func (c *Client) Contacts(ctx context.Context) ([]domain.Contact, error) {
	var out []domain.Contact
	_, err := c.do(ctx, http.MethodGet, "/contacts", nil, &out)
	return out, err
}

func (c *Client) UpdateContactStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/contacts/%d/status", id), map[string]string{"status": string(status)}, nil)
	return err
}

func (c *Client) create(ctx context.Context, path string, in any) (int64, error) {
	var data struct {
		ID int64 `json:"id"`
	}
	if _, err := c.do(ctx, http.MethodPost, path, in, &data); err != nil {
		return 0, err
	}
	return data.ID, nil
}

// do performs an envelope call, decodes data into out and returns the
// envelope message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (string, error) {
	var env envelope
	if err := c.doRaw(ctx, method, path, body, &env); err != nil {
		return "", err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("failed to decode data: %w", err)
		}
	}
	return env.Message, nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call portfolio api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		if err := json.Unmarshal(respBody, &env); err == nil && env.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		}
		return fmt.Errorf("portfolio api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
