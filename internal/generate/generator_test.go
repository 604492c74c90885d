package generate

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/prompt"
	"github.com/readmekit/readmekit/internal/render"
)

// stubCompleter returns a canned answer or error and records the prompt.
type stubCompleter struct {
	mu      sync.Mutex
	answer  string
	err     error
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, p string, _ core.ModelOptions) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, p)
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func newGenerator(t *testing.T, c core.Completer) *Generator {
	t.Helper()
	builder, err := prompt.NewBuilder()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGenerator(builder, c, logger)
}

func genProject() *core.Project {
	return &core.Project{
		Name:     "demo",
		Tagline:  "demo tagline",
		Features: []string{"one"},
		License:  "MIT",
		Style:    core.BadgeStyleFlat,
		Template: "Basic",
	}
}

func TestGenerateSuccess(t *testing.T) {
	stub := &stubCompleter{answer: "# Hi\n\nGenerated.\n"}
	g := newGenerator(t, stub)

	res, err := g.Generate(context.Background(), genProject(), core.Options{})
	require.NoError(t, err)

	assert.False(t, res.UsedFallback)
	assert.NoError(t, res.Err)
	assert.Equal(t, "# Hi\n\nGenerated.", res.Content)
	require.Len(t, stub.prompts, 1, "exactly one remote call per generation")
}

func TestGenerateAddsTOC(t *testing.T) {
	stub := &stubCompleter{answer: "# Hi\n"}
	g := newGenerator(t, stub)

	res, err := g.Generate(context.Background(), genProject(), core.Options{AddTOC: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Content, "## Table of Contents\n- [Hi](#hi)\n\n"))
	assert.True(t, strings.HasSuffix(res.Content, "# Hi"))
}

func TestGenerateStripsWrappingFence(t *testing.T) {
	stub := &stubCompleter{answer: "```markdown\n# Hi\n```"}
	g := newGenerator(t, stub)

	res, err := g.Generate(context.Background(), genProject(), core.Options{})
	require.NoError(t, err)
	assert.Equal(t, "# Hi", res.Content)
}

func TestGenerateFallsBackOnRemoteError(t *testing.T) {
	stub := &stubCompleter{err: &core.RemoteError{Status: 500, Body: "boom"}}
	g := newGenerator(t, stub)
	p := genProject()

	res, err := g.Generate(context.Background(), p, core.Options{})
	require.NoError(t, err)

	want, err := render.Render(p, p.Template)
	require.NoError(t, err)

	assert.True(t, res.UsedFallback)
	assert.Equal(t, want, res.Content)
	assert.ErrorIs(t, res.Err, core.ErrExternalGenerator)

	var remoteErr *core.RemoteError
	assert.ErrorAs(t, res.Err, &remoteErr, "the remote detail is carried through")
}

func TestGenerateWithoutCompleterFallsBack(t *testing.T) {
	g := newGenerator(t, nil)
	p := genProject()

	res, err := g.Generate(context.Background(), p, core.Options{})
	require.NoError(t, err)

	want, err := render.Render(p, p.Template)
	require.NoError(t, err)

	assert.True(t, res.UsedFallback)
	assert.Equal(t, want, res.Content)
	assert.ErrorIs(t, res.Err, core.ErrExternalGenerator)
}

func TestGenerateFallbackDoesNotGetTOC(t *testing.T) {
	g := newGenerator(t, nil)

	res, err := g.Generate(context.Background(), genProject(), core.Options{AddTOC: true})
	require.NoError(t, err)
	assert.NotContains(t, res.Content, "## Table of Contents")
}

func TestGenerateUnknownTemplateDuringFallbackFails(t *testing.T) {
	stub := &stubCompleter{err: &core.RemoteError{Status: 503, Body: "down"}}
	g := newGenerator(t, stub)
	p := genProject()
	p.Template = "DoesNotExist"

	res, err := g.Generate(context.Background(), p, core.Options{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrUnknownTemplate)
}

func TestGenerateEmptyAnswerFallsBack(t *testing.T) {
	stub := &stubCompleter{answer: "   \n"}
	g := newGenerator(t, stub)

	res, err := g.Generate(context.Background(), genProject(), core.Options{})
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
}

func TestGenerateConcurrentCalls(t *testing.T) {
	stub := &stubCompleter{answer: "# Hi\n"}
	g := newGenerator(t, stub)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := g.Generate(context.Background(), genProject(), core.Options{})
			assert.NoError(t, err)
			assert.Equal(t, "# Hi", res.Content)
		}()
	}
	wg.Wait()
}
