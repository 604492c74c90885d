package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmekit/readmekit/internal/core"
)

func TestSnippetStyleSubstitution(t *testing.T) {
	flat, err := Snippet("MIT", core.BadgeStyleFlat)
	require.NoError(t, err)
	fancy, err := Snippet("MIT", core.BadgeStyleForTheBadge)
	require.NoError(t, err)

	assert.Contains(t, flat, "style=flat")
	assert.Contains(t, fancy, "style=for-the-badge")
	assert.Equal(t,
		strings.ReplaceAll(flat, "style=flat", "style=for-the-badge"),
		fancy,
		"snippets must differ only in the style query parameter",
	)
}

func TestSnippetUnknownBadge(t *testing.T) {
	_, err := Snippet("Nonexistent", core.BadgeStyleFlat)
	assert.ErrorIs(t, err, core.ErrUnknownBadge)
}

func TestSnippetDefaultsStyle(t *testing.T) {
	got, err := Snippet("Docker", "")
	require.NoError(t, err)
	assert.Contains(t, got, "style=flat")
}

func TestJoinPreservesOrder(t *testing.T) {
	got, err := Join([]string{"Python", "MIT"}, core.BadgeStyleFlat)
	require.NoError(t, err)

	parts := strings.Split(got, " ")
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "python")
	assert.Contains(t, parts[1], "MIT")
}

func TestJoinUnknownBadgeFails(t *testing.T) {
	_, err := Join([]string{"Python", "Nope"}, core.BadgeStyleFlat)
	assert.ErrorIs(t, err, core.ErrUnknownBadge)
}

func TestKnownAndNames(t *testing.T) {
	assert.True(t, Known("GitHub Actions"))
	assert.False(t, Known("Nonexistent"))

	names := Names()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "MIT")
	assert.True(t, sortedStrings(names))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
