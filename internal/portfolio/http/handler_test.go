package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the three repositories. It applies
// the same ordering rules as the SQL statements.
type memStore struct {
	mu           sync.Mutex
	clock        time.Time
	nextID       int64
	projects     []domain.Project
	testimonials []domain.Testimonial
	contacts     []domain.Contact
	err          error
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memStore) tick() (int64, time.Time) {
	m.nextID++
	m.clock = m.clock.Add(time.Minute)
	return m.nextID, m.clock
}

// errNotNull mirrors the store rejecting a NULL in a NOT NULL column.
var errNotNull = errors.New("null value violates not-null constraint")

func deref(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}

type projectStore struct{ *memStore }

func (s projectStore) List(_ context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := append([]domain.Project{}, s.projects...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s projectStore) ListFeatured(_ context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []domain.Project{}
	for _, p := range s.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s projectStore) Create(_ context.Context, p domain.NewProject) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	title, ok := deref(p.Title)
	if !ok {
		return 0, fmt.Errorf("create project: %w", errNotNull)
	}
	id, at := s.tick()
	techs := p.Technologies
	if techs == nil {
		techs = domain.Technologies{}
	}
	s.projects = append(s.projects, domain.Project{
		ID:           id,
		Title:        title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		GithubURL:    p.GithubURL,
		LiveDemoURL:  p.LiveDemoURL,
		Technologies: techs,
		Featured:     p.Featured,
		CreatedAt:    at,
	})
	return id, nil
}

type testimonialStore struct{ *memStore }

func (s testimonialStore) List(_ context.Context) ([]domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := append([]domain.Testimonial{}, s.testimonials...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s testimonialStore) ListFeatured(_ context.Context) ([]domain.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []domain.Testimonial{}
	for _, t := range s.testimonials {
		if t.Featured {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s testimonialStore) Create(_ context.Context, t domain.NewTestimonial) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	name, okName := deref(t.ClientName)
	text, okText := deref(t.TestimonialText)
	if !okName || !okText {
		return 0, fmt.Errorf("create testimonial: %w", errNotNull)
	}
	id, at := s.tick()
	s.testimonials = append(s.testimonials, domain.Testimonial{
		ID:              id,
		ClientName:      name,
		ClientPosition:  t.ClientPosition,
		ClientCompany:   t.ClientCompany,
		TestimonialText: text,
		Rating:          t.Rating,
		Featured:        t.Featured,
		CreatedAt:       at,
	})
	return id, nil
}

type contactStore struct{ *memStore }

func (s contactStore) Create(_ context.Context, c domain.NewContact) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	id, at := s.tick()
	s.contacts = append(s.contacts, domain.Contact{
		ID:        id,
		FullName:  c.FullName,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    domain.ContactStatusNew,
		CreatedAt: at,
	})
	return id, nil
}

func (s contactStore) List(_ context.Context) ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := append([]domain.Contact{}, s.contacts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s contactStore) UpdateStatus(_ context.Context, id int64, status domain.ContactStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].Status = status
		}
	}
	return nil
}

func setupRouter(t *testing.T, store *memStore, adminKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.NoRoute(response.NotFound)
	h := New(projectStore{store}, testimonialStore{store}, contactStore{store})
	h.Register(r.Group("/api"), middleware.AdminKey(adminKey))
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers ...string) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body=%s", rr.Body.String())
	return rr.Code, env
}

func TestCreateContact_ThenListed(t *testing.T) {
	store := newMemStore()
	r := setupRouter(t, store, "")

	code, env := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"full_name": "A",
		"email":     "a@example.com",
		"message":   "hi",
	})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, MsgContactSent, env.Message)

	var created response.IDData
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Positive(t, created.ID)

	code, env = doJSON(t, r, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, code)

	var contacts []domain.Contact
	require.NoError(t, json.Unmarshal(env.Data, &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, created.ID, contacts[0].ID)
	assert.Equal(t, domain.ContactStatusNew, contacts[0].Status)
	assert.Equal(t, "", contacts[0].Subject)
}

func TestCreateContact_MissingFields(t *testing.T) {
	cases := map[string]any{
		"missing name":    map[string]string{"email": "a@example.com", "message": "hi"},
		"missing email":   map[string]string{"full_name": "A", "message": "hi"},
		"missing message": map[string]string{"full_name": "A", "email": "a@example.com"},
		"empty name":      map[string]string{"full_name": "", "email": "a@example.com", "message": "hi"},
		"empty body":      nil,
		"not json":        "full_name=A",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			r := setupRouter(t, store, "")

			code, env := doJSON(t, r, http.MethodPost, "/api/contact", body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.Success)
			assert.Equal(t, MsgContactRequired, env.Message)
			assert.Empty(t, store.contacts)
		})
	}
}

func TestCreateContact_StoresFieldsAsSubmitted(t *testing.T) {
	store := newMemStore()
	r := setupRouter(t, store, "")

	code, env := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"full_name": " ",
		"email":     " a@example.com",
		"subject":   "  Hello ",
		"message":   "  line1\n\n",
	})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	require.Len(t, store.contacts, 1)
	got := store.contacts[0]
	assert.Equal(t, " ", got.FullName)
	assert.Equal(t, " a@example.com", got.Email)
	assert.Equal(t, "  Hello ", got.Subject)
	assert.Equal(t, "  line1\n\n", got.Message)
}

func TestUpdateContactStatus(t *testing.T) {
	store := newMemStore()
	r := setupRouter(t, store, "")
	id, err := contactStore{store}.Create(context.Background(), domain.NewContact{FullName: "A", Email: "a@example.com", Message: "hi"})
	require.NoError(t, err)
	path := fmt.Sprintf("/api/contacts/%d/status", id)

	for _, status := range []string{"read", "replied", "new"} {
		code, env := doJSON(t, r, http.MethodPatch, path, map[string]string{"status": status})
		require.Equal(t, http.StatusOK, code)
		assert.True(t, env.Success)
		assert.Equal(t, MsgStatusUpdated, env.Message)
		assert.Equal(t, domain.ContactStatus(status), store.contacts[0].Status)
	}

	code, env := doJSON(t, r, http.MethodPatch, path, map[string]string{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, MsgInvalidStatus, env.Message)
	assert.Equal(t, domain.ContactStatusNew, store.contacts[0].Status)
}

func TestUpdateContactStatus_InvalidInput(t *testing.T) {
	r := setupRouter(t, newMemStore(), "")

	code, env := doJSON(t, r, http.MethodPatch, "/api/contacts/5/status", map[string]string{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, envelope{Success: false, Message: "Invalid status"}, env)

	code, env = doJSON(t, r, http.MethodPatch, "/api/contacts/5/status", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, MsgInvalidStatus, env.Message)

	code, env = doJSON(t, r, http.MethodPatch, "/api/contacts/abc/status", `{"status":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, MsgInvalidStatus, env.Message)

	code, env = doJSON(t, r, http.MethodPatch, "/api/contacts/abc/status", map[string]string{"status": "read"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, MsgInvalidID, env.Message)

	code, env = doJSON(t, r, http.MethodPatch, "/api/contacts/999/status", map[string]string{"status": "read"})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestProjects_CreateAndList(t *testing.T) {
	store := newMemStore()
	r := setupRouter(t, store, "")

	create := func(title string, featured *bool, techs []string) int64 {
		body := map[string]any{"title": title, "description": title + " desc", "technologies": techs}
		if featured != nil {
			body["featured"] = *featured
		}
		code, env := doJSON(t, r, http.MethodPost, "/api/projects", body)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Project added successfully", env.Message)
		var out response.IDData
		require.NoError(t, json.Unmarshal(env.Data, &out))
		return out.ID
	}

	yes := true
	featuredOld := create("featured-old", &yes, []string{"React", "Node"})
	plainNew := create("plain-new", nil, nil)
	featuredNew := create("featured-new", &yes, []string{"Go"})

	code, env := doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, code)
	var all []domain.Project
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 3)
	assert.Equal(t, []int64{featuredNew, featuredOld, plainNew}, []int64{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, domain.Technologies{"React", "Node"}, all[1].Technologies)
	assert.False(t, all[2].Featured)
	assert.Equal(t, domain.Technologies{}, all[2].Technologies)

	code, env = doJSON(t, r, http.MethodGet, "/api/projects/featured", nil)
	require.Equal(t, http.StatusOK, code)
	var featured []domain.Project
	require.NoError(t, json.Unmarshal(env.Data, &featured))
	require.Len(t, featured, 2)
	assert.Equal(t, featuredNew, featured[0].ID)
	assert.Equal(t, featuredOld, featured[1].ID)
}

func TestProjects_InvalidBody(t *testing.T) {
	r := setupRouter(t, newMemStore(), "")

	code, env := doJSON(t, r, http.MethodPost, "/api/projects", "{not json")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestCreate_MissingRequiredColumnsFailInStore(t *testing.T) {
	cases := []struct {
		path    string
		body    any
		message string
	}{
		{"/api/projects", map[string]any{}, "Error adding project"},
		{"/api/projects", map[string]any{"description": "no title"}, "Error adding project"},
		{"/api/testimonials", map[string]any{}, "Error adding testimonial"},
		{"/api/testimonials", map[string]any{"client_name": "Jane"}, "Error adding testimonial"},
		{"/api/testimonials", map[string]any{"testimonial_text": "Great"}, "Error adding testimonial"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			store := newMemStore()
			r := setupRouter(t, store, "")

			code, env := doJSON(t, r, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, env.Success)
			assert.Equal(t, tc.message, env.Message)
			assert.Empty(t, store.projects)
			assert.Empty(t, store.testimonials)
		})
	}
}

func TestProjects_EmptyTitleIsStored(t *testing.T) {
	store := newMemStore()
	r := setupRouter(t, store, "")

	code, _ := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{"title": ""})
	require.Equal(t, http.StatusOK, code)
	require.Len(t, store.projects, 1)
	assert.Equal(t, "", store.projects[0].Title)
}

func TestTestimonials_CreateAndListFeatured(t *testing.T) {
	store := newMemStore()
	r := setupRouter(t, store, "")

	code, env := doJSON(t, r, http.MethodPost, "/api/testimonials", map[string]any{
		"client_name":      "Jane",
		"client_position":  "CTO",
		"testimonial_text": "Great work",
		"rating":           5,
		"featured":         true,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Testimonial added successfully", env.Message)

	code, _ = doJSON(t, r, http.MethodPost, "/api/testimonials", map[string]any{
		"client_name":      "Bob",
		"testimonial_text": "Fine",
	})
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, r, http.MethodGet, "/api/testimonials/featured", nil)
	require.Equal(t, http.StatusOK, code)
	var featured []domain.Testimonial
	require.NoError(t, json.Unmarshal(env.Data, &featured))
	require.Len(t, featured, 1)
	assert.Equal(t, "Jane", featured[0].ClientName)
	require.NotNil(t, featured[0].Rating)
	assert.Equal(t, 5.0, *featured[0].Rating)

	code, env = doJSON(t, r, http.MethodGet, "/api/testimonials", nil)
	require.Equal(t, http.StatusOK, code)
	var all []domain.Testimonial
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 2)
	assert.True(t, all[0].Featured)
	assert.False(t, all[1].Featured)
}

func TestStoreFailures(t *testing.T) {
	cases := []struct {
		method, path string
		body         any
		message      string
	}{
		{http.MethodGet, "/api/projects", nil, "Error fetching projects"},
		{http.MethodGet, "/api/projects/featured", nil, "Error fetching featured projects"},
		{http.MethodPost, "/api/projects", map[string]string{"title": "x"}, "Error adding project"},
		{http.MethodGet, "/api/testimonials", nil, "Error fetching testimonials"},
		{http.MethodGet, "/api/testimonials/featured", nil, "Error fetching featured testimonials"},
		{http.MethodPost, "/api/testimonials", map[string]string{"client_name": "x"}, "Error adding testimonial"},
		{http.MethodPost, "/api/contact", map[string]string{"full_name": "A", "email": "a@example.com", "message": "hi"}, "Error sending message. Please try again."},
		{http.MethodGet, "/api/contacts", nil, "Error fetching contacts"},
		{http.MethodPatch, "/api/contacts/1/status", map[string]string{"status": "read"}, "Error updating status"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			store := newMemStore()
			store.err = fmt.Errorf("list: %w", errors.Join(domain.ErrStoreTimeout, errors.New("pq: password authentication failed")))
			r := setupRouter(t, store, "")

			code, env := doJSON(t, r, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, env.Success)
			assert.Equal(t, tc.message, env.Message)
			assert.NotContains(t, env.Message, "password")
		})
	}
}

func TestAdminKey(t *testing.T) {
	r := setupRouter(t, newMemStore(), "s3cret")

	code, env := doJSON(t, r, http.MethodGet, "/api/contacts", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid API key", env.Message)

	code, _ = doJSON(t, r, http.MethodGet, "/api/contacts", nil, "X-API-Key", "s3cret")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{"full_name": "A", "email": "a@example.com", "message": "hi"})
	assert.Equal(t, http.StatusOK, code, "public submission stays open")

	code, _ = doJSON(t, r, http.MethodGet, "/api/projects/featured", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestUnmatchedRoute(t *testing.T) {
	r := setupRouter(t, newMemStore(), "")

	code, env := doJSON(t, r, http.MethodGet, "/api/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, envelope{Success: false, Message: "Endpoint not found"}, env)
}
