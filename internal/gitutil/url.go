// Package gitutil parses GitHub repository references from URLs and local
// checkouts.
package gitutil

import (
	"fmt"
	"regexp"
	"strings"
)

var repoURLRegex = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)

// ParseRepoURL extracts the owner and repository name from a GitHub URL.
// Supported formats: https://github.com/{owner}/{repo}[.git] and the SSH
// form git@github.com:{owner}/{repo}.git.
func ParseRepoURL(url string) (owner, repo string, err error) {
	url = strings.TrimSuffix(strings.TrimSpace(url), "/")

	matches := repoURLRegex.FindStringSubmatch(url)
	if len(matches) != 3 {
		return "", "", fmt.Errorf("invalid repository URL format: %s", url)
	}
	return matches[1], matches[2], nil
}

// ParseRepoSlug splits an "owner/repo" slug.
func ParseRepoSlug(slug string) (owner, repo string, err error) {
	parts := strings.Split(strings.TrimSpace(slug), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository slug %q, expected owner/repo", slug)
	}
	return parts[0], parts[1], nil
}
