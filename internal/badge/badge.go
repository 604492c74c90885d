// Package badge synthesizes shields.io badge snippets from a fixed,
// embedded badge table.
package badge

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/readmekit/readmekit/internal/core"
)

//go:embed badges.yml
var badgeFiles embed.FS

var loadTable = sync.OnceValues(func() (map[string]string, error) {
	data, err := badgeFiles.ReadFile("badges.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded badge table: %w", err)
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse badge table: %w", err)
	}
	return table, nil
})

// Snippet returns the Markdown badge snippet for a badge key with the given
// style substituted into the shields.io query parameter. Unknown keys fail
// with core.ErrUnknownBadge.
func Snippet(name string, style core.BadgeStyle) (string, error) {
	table, err := loadTable()
	if err != nil {
		return "", err
	}
	tmpl, ok := table[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrUnknownBadge, name)
	}
	if style == "" {
		style = core.BadgeStyleFlat
	}
	return strings.ReplaceAll(tmpl, "{style}", string(style)), nil
}

// Join renders every badge key in order and joins the snippets with a single
// space, the way badges sit on one line at the top of a README.
func Join(names []string, style core.BadgeStyle) (string, error) {
	snippets := make([]string, 0, len(names))
	for _, name := range names {
		s, err := Snippet(name, style)
		if err != nil {
			return "", err
		}
		snippets = append(snippets, s)
	}
	return strings.Join(snippets, " "), nil
}

// Known reports whether a badge key exists in the table.
func Known(name string) bool {
	table, err := loadTable()
	if err != nil {
		return false
	}
	_, ok := table[name]
	return ok
}

// Names returns all badge keys in sorted order, for CLI help output.
func Names() []string {
	table, err := loadTable()
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
