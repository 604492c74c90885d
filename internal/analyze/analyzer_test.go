package analyze

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/github"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalFillsProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.py"), "print('hi')\n")
	writeFile(t, filepath.Join(dir, "web", "app.js"), "console.log('hi')\n")
	writeFile(t, filepath.Join(dir, "requirements.txt"), "# deps\nrequests>=2.0\ncustomtkinter\n")
	writeFile(t, filepath.Join(dir, ".github", "workflows", "ci.yml"), "on: push\n")

	a := NewAnalyzer(testLogger())
	p := &core.Project{}
	require.NoError(t, a.Local(dir, p))

	assert.Equal(t, filepath.Base(dir), p.Name)
	assert.Equal(t, []string{"JavaScript", "Python"}, p.Languages)
	assert.Equal(t, []string{"requests>=2.0", "customtkinter"}, p.Dependencies)
	assert.Contains(t, p.Badges, "Python")
	assert.Contains(t, p.Badges, "JavaScript")
	assert.Contains(t, p.Badges, "GitHub Actions")
	assert.Contains(t, p.DirTree, "```\n")
	assert.Contains(t, p.DirTree, "main.py")
}

func TestLocalKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")

	a := NewAnalyzer(testLogger())
	p := &core.Project{
		Name:         "keep-me",
		Dependencies: []string{"already-set"},
		Languages:    []string{"Rust"},
	}
	require.NoError(t, a.Local(dir, p))

	assert.Equal(t, "keep-me", p.Name)
	assert.Equal(t, []string{"already-set"}, p.Dependencies)
	assert.Equal(t, []string{"Go", "Rust"}, p.Languages, "detected languages merge with hand-set ones")
}

func TestLocalSkipsVendorAndHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "node_modules", "lib", "index.js"), "")
	writeFile(t, filepath.Join(dir, ".cache", "tool.rb"), "")

	a := NewAnalyzer(testLogger())
	p := &core.Project{}
	require.NoError(t, a.Local(dir, p))

	assert.Equal(t, []string{"Go"}, p.Languages)
}

func TestLocalGoModDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"),
		"module example.com/app\n\ngo 1.24\n\nrequire (\n\tgithub.com/spf13/cobra v1.9.1\n\tgithub.com/spf13/pflag v1.0.6 // indirect\n)\n")

	a := NewAnalyzer(testLogger())
	p := &core.Project{}
	require.NoError(t, a.Local(dir, p))

	assert.Equal(t, []string{"github.com/spf13/cobra"}, p.Dependencies)
}

func TestLocalNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	a := NewAnalyzer(testLogger())
	assert.Error(t, a.Local(file, &core.Project{}))
	assert.Error(t, a.Local(filepath.Join(dir, "missing"), &core.Project{}))
}

type stubGitHub struct {
	info *github.RepoInfo
	err  error
}

func (s *stubGitHub) GetRepository(ctx context.Context, owner, repo string) (*github.RepoInfo, error) {
	return s.info, s.err
}

func (s *stubGitHub) PutReadme(ctx context.Context, owner, repo, branch string, content []byte) error {
	return nil
}

func TestGitHubFillsProject(t *testing.T) {
	stub := &stubGitHub{info: &github.RepoInfo{
		Name:        "hello-world",
		Description: "A demo repository",
		Language:    "Go",
		Stars:       42,
		Forks:       7,
	}}

	a := NewAnalyzer(testLogger())
	p := &core.Project{}
	require.NoError(t, a.GitHub(context.Background(), "https://github.com/octocat/hello-world", stub, p))

	assert.Equal(t, "hello-world", p.Name)
	assert.Equal(t, "A demo repository", p.Description)
	assert.Equal(t, []string{"Go"}, p.Languages)
	assert.Equal(t, "octocat/hello-world", p.Repository)
	assert.Contains(t, p.Badges, "GitHub Stars")
	assert.Contains(t, p.Badges, "GitHub Forks")
}

func TestGitHubInvalidURL(t *testing.T) {
	a := NewAnalyzer(testLogger())
	err := a.GitHub(context.Background(), "https://gitlab.com/a/b", &stubGitHub{}, &core.Project{})
	assert.Error(t, err)
}
