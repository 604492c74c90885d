// Package analyze auto-fills a project field model from a local directory or
// a GitHub repository, so users start from detected facts instead of blank
// forms.
package analyze

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/readmekit/readmekit/internal/badge"
	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/github"
	"github.com/readmekit/readmekit/internal/gitutil"
	"github.com/readmekit/readmekit/internal/markdown"
)

const treeDepth = 3

// languageByExt maps source file extensions to display names. Unlisted
// extensions are ignored.
var languageByExt = map[string]string{
	".go":    "Go",
	".py":    "Python",
	".js":    "JavaScript",
	".jsx":   "JavaScript",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".java":  "Java",
	".rb":    "Ruby",
	".rs":    "Rust",
	".c":     "C",
	".h":     "C",
	".cpp":   "C++",
	".cs":    "C#",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".sh":    "Shell",
}

var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
}

// Analyzer fills project fields from external sources.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Local inspects a project directory: name, languages, dependencies,
// suggested badges, the rendered directory tree, and the origin repository
// slug when the directory is a git checkout. Existing values are kept.
func (a *Analyzer) Local(path string, p *core.Project) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}

	if p.Name == "" {
		p.Name = filepath.Base(path)
	}

	langs, err := detectLanguages(path)
	if err != nil {
		return err
	}
	for _, lang := range langs {
		p.Languages = mergeLanguage(p.Languages, lang)
	}

	if len(p.Dependencies) == 0 {
		p.Dependencies = detectDependencies(path)
	}

	for _, lang := range langs {
		if badge.Known(lang) {
			p.AddBadge(lang)
		}
	}
	if hasWorkflows(path) {
		p.AddBadge("GitHub Actions")
	}

	tree, err := markdown.DirTree(path, treeDepth)
	if err != nil {
		return fmt.Errorf("failed to render directory tree: %w", err)
	}
	p.DirTree = tree

	if p.Repository == "" {
		if slug, err := gitutil.DetectOriginSlug(path); err == nil {
			p.Repository = slug
		} else {
			a.logger.Debug("no origin remote detected", "path", path, "error", err)
		}
	}

	a.logger.Info("analyzed local directory",
		"path", path, "languages", len(langs), "dependencies", len(p.Dependencies))
	return nil
}

// GitHub fills project facts from a repository URL via the API.
func (a *Analyzer) GitHub(ctx context.Context, rawURL string, client github.Client, p *core.Project) error {
	owner, repo, err := gitutil.ParseRepoURL(rawURL)
	if err != nil {
		return err
	}

	info, err := client.GetRepository(ctx, owner, repo)
	if err != nil {
		return fmt.Errorf("failed to fetch repository %s/%s: %w", owner, repo, err)
	}

	if p.Name == "" {
		p.Name = info.Name
	}
	if p.Description == "" {
		p.Description = info.Description
	}
	if info.Language != "" {
		p.Languages = mergeLanguage(p.Languages, info.Language)
	}
	p.Repository = owner + "/" + repo
	github.SuggestBadges(info, p)

	a.logger.Info("analyzed GitHub repository", "repo", p.Repository, "language", info.Language)
	return nil
}

// detectLanguages walks the tree and collects display names for every source
// extension seen, sorted for stable output.
func detectLanguages(root string) ([]string, error) {
	seen := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if lang, ok := languageByExt[ext]; ok {
			seen[lang] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// detectDependencies reads requirements.txt or the go.mod require block.
func detectDependencies(root string) []string {
	if deps := readRequirements(filepath.Join(root, "requirements.txt")); len(deps) > 0 {
		return deps
	}
	return readGoModRequires(filepath.Join(root, "go.mod"))
}

func readRequirements(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var deps []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		deps = append(deps, line)
	}
	return deps
}

func readGoModRequires(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var deps []string
	inBlock := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "require (":
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock && line != "" && !strings.Contains(line, "// indirect"):
			deps = append(deps, strings.Fields(line)[0])
		}
	}
	return deps
}

func hasWorkflows(root string) bool {
	info, err := os.Stat(filepath.Join(root, ".github", "workflows"))
	return err == nil && info.IsDir()
}

func mergeLanguage(langs []string, lang string) []string {
	for _, l := range langs {
		if l == lang {
			return langs
		}
	}
	langs = append(langs, lang)
	sort.Strings(langs)
	return langs
}
