package gitutil

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// DetectOriginSlug opens the repository at path and returns the "owner/repo"
// slug of its origin remote, when the remote points at GitHub.
func DetectOriginSlug(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("no origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}

	owner, name, err := ParseRepoURL(urls[0])
	if err != nil {
		return "", err
	}
	return owner + "/" + name, nil
}
