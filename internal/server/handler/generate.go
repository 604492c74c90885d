// Package handler provides HTTP handlers for the readmekit API.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/storage"
)

// GenerateRequest is the JSON payload accepted by the generate endpoint.
type GenerateRequest struct {
	Project *core.Project `json:"project"`
	Options core.Options  `json:"options"`
}

// GenerateResponse acknowledges an accepted generation with the id under
// which the document will be stored.
type GenerateResponse struct {
	ID string `json:"id"`
}

// GenerateHandler accepts generation requests and queues them for background
// processing.
type GenerateHandler struct {
	dispatcher core.JobDispatcher
	defaults   core.ModelOptions
	logger     *slog.Logger
}

// NewGenerateHandler creates a new generation handler with the given
// dispatcher. Model options the request leaves empty are filled from defaults.
func NewGenerateHandler(dispatcher core.JobDispatcher, defaults core.ModelOptions, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{dispatcher: dispatcher, defaults: defaults, logger: logger}
}

// Handle validates the payload, queues a generation job, and answers 202 with
// the document id.
func (h *GenerateHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error("could not parse generation request", "error", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.Project == nil || payload.Project.Name == "" {
		http.Error(w, "Project name is required", http.StatusBadRequest)
		return
	}
	payload.Project.Normalize()

	if payload.Options.Model == "" {
		payload.Options.Model = h.defaults.Model
	}
	if payload.Options.MaxTokens <= 0 {
		payload.Options.MaxTokens = h.defaults.MaxTokens
	}
	if payload.Options.Temperature <= 0 {
		payload.Options.Temperature = h.defaults.Temperature
	}

	req := &core.GenerateRequest{
		ID:      uuid.NewString(),
		Project: payload.Project,
		Options: payload.Options,
	}
	if err := h.dispatcher.Dispatch(r.Context(), req); err != nil {
		h.logger.Error("failed to dispatch generation job", "error", err, "project", payload.Project.Name)
		http.Error(w, "Failed to queue generation job", http.StatusServiceUnavailable)
		return
	}

	h.logger.Info("generation job dispatched", "request_id", req.ID, "project", payload.Project.Name)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(GenerateResponse{ID: req.ID})
}

// DocumentsHandler serves generated documents from the history store.
type DocumentsHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// NewDocumentsHandler creates a new documents handler backed by the store.
func NewDocumentsHandler(store storage.Store, logger *slog.Logger) *DocumentsHandler {
	return &DocumentsHandler{store: store, logger: logger}
}

// Get returns a single document by id, or 404 while the job is still queued
// or the id is unknown.
func (h *DocumentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.store.GetDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			http.Error(w, "Document not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load document", "id", id, "error", err)
		http.Error(w, "Failed to load document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(doc)
}

// List returns the most recent documents, newest first. The limit query
// parameter caps the result count.
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	docs, err := h.store.ListDocuments(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list documents", "error", err)
		http.Error(w, "Failed to list documents", http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []core.Document{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(docs)
}
