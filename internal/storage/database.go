// Package storage persists generated documents so past generations can be
// listed, reloaded, and exported again.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/readmekit/readmekit/internal/core"
)

// ErrDocumentNotFound is returned when no document exists for an id.
var ErrDocumentNotFound = errors.New("document not found")

// Store defines the interface for all history database operations.
type Store interface {
	SaveDocument(ctx context.Context, doc *core.Document) error
	GetDocument(ctx context.Context, id string) (*core.Document, error)
	ListDocuments(ctx context.Context, limit int) ([]core.Document, error)
	DeleteAll(ctx context.Context) error
}

type sqliteStore struct {
	db *sqlx.DB
}

// NewStore creates a new Store backed by the history database.
func NewStore(db *sqlx.DB) Store {
	return &sqliteStore{db: db}
}

// SaveDocument inserts a generated document into the history.
func (s *sqliteStore) SaveDocument(ctx context.Context, doc *core.Document) error {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO documents (id, name, content, used_fallback, fallback_reason, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		doc.ID, doc.Name, doc.Content, doc.UsedFallback, doc.FallbackReason, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", doc.ID, err)
	}
	return nil
}

// GetDocument retrieves a single document by id.
func (s *sqliteStore) GetDocument(ctx context.Context, id string) (*core.Document, error) {
	var doc core.Document
	query := `SELECT id, name, content, used_fallback, fallback_reason, created_at
	          FROM documents WHERE id = ?`
	if err := s.db.GetContext(ctx, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
		}
		return nil, fmt.Errorf("failed to load document %s: %w", id, err)
	}
	return &doc, nil
}

// ListDocuments returns the most recent documents, newest first.
func (s *sqliteStore) ListDocuments(ctx context.Context, limit int) ([]core.Document, error) {
	if limit <= 0 {
		limit = 20
	}
	var docs []core.Document
	query := `SELECT id, name, content, used_fallback, fallback_reason, created_at
	          FROM documents ORDER BY created_at DESC LIMIT ?`
	if err := s.db.SelectContext(ctx, &docs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// DeleteAll clears the history.
func (s *sqliteStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
