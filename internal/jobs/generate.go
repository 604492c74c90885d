package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/generate"
	"github.com/readmekit/readmekit/internal/storage"
)

const generateTimeout = 5 * time.Minute

// GenerateJob is a background job that generates a README for a project and
// records the outcome in the history store.
type GenerateJob struct {
	generator *generate.Generator
	store     storage.Store
	logger    *slog.Logger
}

// NewGenerateJob creates a new GenerateJob with generator, store, and logger.
func NewGenerateJob(generator *generate.Generator, store storage.Store, logger *slog.Logger) core.Job {
	if generator == nil {
		panic("generator cannot be nil")
	}
	if store == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GenerateJob{generator: generator, store: store, logger: logger}
}

// Run executes the generation job for a queued request.
func (j *GenerateJob) Run(ctx context.Context, req *core.GenerateRequest) error {
	if err := validateRequest(ctx, req); err != nil {
		j.logger.Error("input validation failed", "error", err)
		return fmt.Errorf("input validation failed: %w", err)
	}

	j.logger.Info("starting generation job", "request_id", req.ID, "project", req.Project.Name)

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	result, err := j.generator.Generate(genCtx, req.Project, req.Options)
	if err != nil {
		return fmt.Errorf("failed to generate document: %w", err)
	}

	doc := &core.Document{
		ID:           req.ID,
		Name:         req.Project.Name,
		Content:      result.Content,
		UsedFallback: result.UsedFallback,
	}
	if result.Err != nil {
		doc.FallbackReason = result.Err.Error()
	}

	if err := j.store.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	j.logger.Info("generation job completed",
		"request_id", req.ID,
		"project", req.Project.Name,
		"used_fallback", result.UsedFallback,
	)
	return nil
}

// validateRequest ensures the request contains all required fields.
func validateRequest(ctx context.Context, req *core.GenerateRequest) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}
	if req.ID == "" {
		return fmt.Errorf("request id cannot be empty")
	}
	if req.Project == nil {
		return fmt.Errorf("project cannot be nil")
	}
	if req.Project.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	return nil
}
