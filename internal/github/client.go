// Package github provides the small slice of the GitHub API readmekit needs:
// repository metadata for project auto-fill, and pushing the generated
// README back to a repository.
package github

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/readmekit/readmekit/internal/core"
)

const readmePath = "README.md"

// RepoInfo is the repository metadata consumed by the analyzer.
type RepoInfo struct {
	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
}

// Client defines the GitHub operations used by readmekit.
type Client interface {
	GetRepository(ctx context.Context, owner, repo string) (*RepoInfo, error)
	PutReadme(ctx context.Context, owner, repo, branch string, content []byte) error
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewPATClient creates a GitHub client authenticated with a Personal Access
// Token. Anonymous access (empty token) still works for public repository
// metadata, just with tighter rate limits.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	if token == "" {
		return &gitHubClient{client: github.NewClient(nil), logger: logger}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &gitHubClient{client: github.NewClient(oauth2.NewClient(ctx, ts)), logger: logger}
}

// GetRepository fetches the metadata the analyzer folds into a project.
func (g *gitHubClient) GetRepository(ctx context.Context, owner, repo string) (*RepoInfo, error) {
	r, _, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		g.logger.Error("failed to get repository", "owner", owner, "repo", repo, "error", err)
		return nil, err
	}
	return &RepoInfo{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
	}, nil
}

// PutReadme creates or updates README.md on the given branch. When the file
// already exists its blob SHA is required by the API, so the current contents
// are fetched first.
func (g *gitHubClient) PutReadme(ctx context.Context, owner, repo, branch string, content []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr("Update README.md via readmekit"),
		Content: content,
		Branch:  github.Ptr(branch),
	}

	current, _, _, err := g.client.Repositories.GetContents(ctx, owner, repo, readmePath,
		&github.RepositoryContentGetOptions{Ref: branch})
	if err == nil && current != nil {
		opts.SHA = current.SHA
		_, _, err = g.client.Repositories.UpdateFile(ctx, owner, repo, readmePath, opts)
	} else {
		opts.Message = github.Ptr("Create README.md via readmekit")
		_, _, err = g.client.Repositories.CreateFile(ctx, owner, repo, readmePath, opts)
	}
	if err != nil {
		g.logger.Error("failed to push README", "owner", owner, "repo", repo, "branch", branch, "error", err)
		return err
	}

	g.logger.Info("pushed README", "owner", owner, "repo", repo, "branch", branch)
	return nil
}

// SuggestBadges maps repository metadata to badge keys worth proposing.
func SuggestBadges(info *RepoInfo, p *core.Project) {
	if info.Stars > 0 {
		p.AddBadge("GitHub Stars")
	}
	if info.Forks > 0 {
		p.AddBadge("GitHub Forks")
	}
}
