// Package render produces a README from a named template without any remote
// call. It is the live-preview path and the orchestrator's fallback when the
// external generator is unavailable.
package render

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/readmekit/readmekit/internal/badge"
	"github.com/readmekit/readmekit/internal/core"
)

//go:embed templates.yml
var templateFiles embed.FS

var loadTemplates = sync.OnceValues(func() (map[string]string, error) {
	data, err := templateFiles.ReadFile("templates.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded template table: %w", err)
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse template table: %w", err)
	}
	return table, nil
})

// Render substitutes the project's fields into the named template. It is pure
// and deterministic: the same project and template always produce the same
// bytes. Unknown template names fail with core.ErrUnknownTemplate.
func Render(p *core.Project, template string) (string, error) {
	table, err := loadTemplates()
	if err != nil {
		return "", err
	}
	skeleton, ok := table[template]
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrUnknownTemplate, template)
	}

	badges, err := badge.Join(p.Badges, p.Style)
	if err != nil {
		return "", err
	}

	replacer := strings.NewReplacer(
		"{name}", p.Name,
		"{tagline}", p.Tagline,
		"{description}", p.Description,
		"{purpose}", p.Purpose,
		"{features}", bullets(p.Features),
		"{installation}", p.Installation,
		"{usage}", p.Usage,
		"{roadmap}", p.Roadmap,
		"{contributing}", p.Contributing,
		"{dependencies}", bullets(p.Dependencies),
		"{license}", p.License,
		"{badges}", badges,
		"{dir_tree}", p.DirTree,
	)
	doc := replacer.Replace(skeleton)

	// The first image leads the document; the rest are a UI concern.
	if len(p.Images) > 0 {
		img := p.Images[0]
		doc = fmt.Sprintf("![%s](%s)\n\n", img.Alt, img.Path) + doc
	}
	return doc, nil
}

// Templates returns the declared template names in sorted order.
func Templates() []string {
	table, err := loadTemplates()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// bullets renders one Markdown list item per entry.
func bullets(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + item)
	}
	return b.String()
}
