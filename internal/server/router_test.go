package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmekit/readmekit/internal/config"
	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/server/handler"
	"github.com/readmekit/readmekit/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// stubDispatcher records dispatched requests.
type stubDispatcher struct {
	requests []*core.GenerateRequest
	err      error
}

func (s *stubDispatcher) Dispatch(_ context.Context, req *core.GenerateRequest) error {
	if s.err != nil {
		return s.err
	}
	s.requests = append(s.requests, req)
	return nil
}

func (s *stubDispatcher) Stop() {}

// stubStore serves canned documents.
type stubStore struct {
	docs map[string]*core.Document
}

func (s *stubStore) SaveDocument(_ context.Context, doc *core.Document) error {
	s.docs[doc.ID] = doc
	return nil
}

func (s *stubStore) GetDocument(_ context.Context, id string) (*core.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	return doc, nil
}

func (s *stubStore) ListDocuments(_ context.Context, _ int) ([]core.Document, error) {
	var docs []core.Document
	for _, doc := range s.docs {
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (s *stubStore) DeleteAll(_ context.Context) error {
	s.docs = make(map[string]*core.Document)
	return nil
}

func newTestRouter(dispatcher core.JobDispatcher, store storage.Store) http.Handler {
	cfg := &config.Config{
		Model:       "openai/gpt-4o-mini",
		MaxTokens:   2000,
		Temperature: 0.3,
	}
	return NewRouter(cfg, dispatcher, store, testLogger())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubDispatcher{}, &stubStore{docs: map[string]*core.Document{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestGenerateAccepted(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newTestRouter(dispatcher, &stubStore{docs: map[string]*core.Document{}})

	body := `{"project": {"name": "demo", "tagline": "a demo"}, "options": {"add_toc": true}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp handler.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)

	require.Len(t, dispatcher.requests, 1)
	req := dispatcher.requests[0]
	assert.Equal(t, resp.ID, req.ID)
	assert.Equal(t, "demo", req.Project.Name)
	assert.True(t, req.Options.AddTOC)
	assert.Equal(t, "Standard", req.Project.Template, "payload without template should be normalized")
}

func TestGenerateAppliesModelDefaults(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newTestRouter(dispatcher, &stubStore{docs: map[string]*core.Document{}})

	body := `{"project": {"name": "demo"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, dispatcher.requests, 1)

	opts := dispatcher.requests[0].Options
	assert.Equal(t, "openai/gpt-4o-mini", opts.Model, "empty model must fall back to the configured default")
	assert.Equal(t, 2000, opts.MaxTokens)
	assert.InDelta(t, 0.3, opts.Temperature, 0.001)
}

func TestGenerateKeepsExplicitModelOptions(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newTestRouter(dispatcher, &stubStore{docs: map[string]*core.Document{}})

	body := `{"project": {"name": "demo"}, "options": {"model_options": {"model": "openai/gpt-4o", "max_tokens": 500, "temperature": 0.7}}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, dispatcher.requests, 1)

	opts := dispatcher.requests[0].Options
	assert.Equal(t, "openai/gpt-4o", opts.Model)
	assert.Equal(t, 500, opts.MaxTokens)
	assert.InDelta(t, 0.7, opts.Temperature, 0.001)
}

func TestGenerateRejectsBadPayload(t *testing.T) {
	router := newTestRouter(&stubDispatcher{}, &stubStore{docs: map[string]*core.Document{}})

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{not json"},
		{name: "missing project", body: `{"options": {}}`},
		{name: "empty project name", body: `{"project": {"name": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGenerateQueueFull(t *testing.T) {
	dispatcher := &stubDispatcher{err: assert.AnError}
	router := newTestRouter(dispatcher, &stubStore{docs: map[string]*core.Document{}})

	body := `{"project": {"name": "demo"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetDocument(t *testing.T) {
	store := &stubStore{docs: map[string]*core.Document{
		"abc": {ID: "abc", Name: "demo", Content: "# demo\n", CreatedAt: time.Now().UTC()},
	}}
	router := newTestRouter(&stubDispatcher{}, store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/documents/abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc core.Document
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	assert.Equal(t, "abc", doc.ID)
	assert.Equal(t, "# demo\n", doc.Content)
}

func TestGetDocumentNotFound(t *testing.T) {
	router := newTestRouter(&stubDispatcher{}, &stubStore{docs: map[string]*core.Document{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/documents/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDocuments(t *testing.T) {
	store := &stubStore{docs: map[string]*core.Document{
		"a": {ID: "a", Name: "one"},
		"b": {ID: "b", Name: "two"},
	}}
	router := newTestRouter(&stubDispatcher{}, store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var docs []core.Document
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&docs))
	assert.Len(t, docs, 2)
}

func TestListDocumentsEmpty(t *testing.T) {
	router := newTestRouter(&stubDispatcher{}, &stubStore{docs: map[string]*core.Document{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
