// Package generate coordinates one README generation: build the prompt, make
// a single call to the external collaborator, post-process the answer, and
// fall back to the local template renderer when the remote path fails.
package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/markdown"
	"github.com/readmekit/readmekit/internal/prompt"
	"github.com/readmekit/readmekit/internal/render"
)

// Generator runs the generation state machine. Each Generate call works on
// its own inputs and shares no mutable state, so a single Generator is safe
// for concurrent use.
type Generator struct {
	builder   *prompt.Builder
	completer core.Completer // nil when no API key is configured
	logger    *slog.Logger
}

// NewGenerator wires a generator. A nil completer is valid and routes every
// generation through the fallback renderer.
func NewGenerator(builder *prompt.Builder, completer core.Completer, logger *slog.Logger) *Generator {
	if builder == nil {
		panic("prompt builder cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Generator{builder: builder, completer: completer, logger: logger}
}

// Generate produces the final document for a project. The remote collaborator
// is called at most once; on any remote failure the caller still receives a
// usable document rendered from the project's template, with the failure
// carried in Result.Err. Only local errors (an undeclared template during
// fallback) surface as an error return.
func (g *Generator) Generate(ctx context.Context, p *core.Project, opts core.Options) (*core.Result, error) {
	instruction, err := g.builder.Build(p, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	if g.completer == nil {
		g.logger.Info("no external generator configured, rendering locally", "template", p.Template)
		return g.fallback(p, fmt.Errorf("%w: no completer configured", core.ErrExternalGenerator))
	}

	text, err := g.completer.Complete(ctx, instruction, opts.ModelOptions)
	if err != nil {
		g.logger.Warn("external generator failed, falling back to template render",
			"template", p.Template, "error", err)
		return g.fallback(p, fmt.Errorf("%w: %w", core.ErrExternalGenerator, err))
	}

	text = markdown.StripFence(text)
	if text == "" {
		return g.fallback(p, fmt.Errorf("%w: generator returned an empty document", core.ErrExternalGenerator))
	}

	if opts.AddTOC {
		text = markdown.TOC(text) + text
	}

	g.logger.Info("generation succeeded", "project", p.Name, "bytes", len(text))
	return &core.Result{Content: text}, nil
}

// fallback renders the project through the template table. A failure here is
// unrecoverable and propagates without a document.
func (g *Generator) fallback(p *core.Project, reason error) (*core.Result, error) {
	content, err := render.Render(p, p.Template)
	if err != nil {
		return nil, fmt.Errorf("fallback render failed: %w", err)
	}
	return &core.Result{Content: content, UsedFallback: true, Err: reason}, nil
}
