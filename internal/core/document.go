package core

import "time"

// Document is a generated README stored in the history database.
type Document struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Content        string    `db:"content" json:"content"`
	UsedFallback   bool      `db:"used_fallback" json:"used_fallback"`
	FallbackReason string    `db:"fallback_reason" json:"fallback_reason,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
