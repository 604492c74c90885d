// Package markdown holds the pure post-processing steps applied to generated
// documents: table-of-contents extraction, directory-tree rendering, and
// cleanup of model output quirks.
package markdown

import "strings"

// TOC builds a "## Table of Contents" block from the heading lines of a
// Markdown document. A heading is any line whose first whitespace-delimited
// token consists entirely of '#' characters; the heading level is the number
// of those characters.
//
// Anchors are the title lower-cased with spaces replaced by hyphens.
// Punctuation is kept verbatim, so anchors can diverge from GitHub's slugs
// for headings containing punctuation; this matches the behavior README
// authors have come to rely on and is pinned by tests.
func TOC(doc string) string {
	var b strings.Builder
	b.WriteString("## Table of Contents\n")

	for _, line := range strings.Split(doc, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		marker := fields[0]
		if strings.Count(marker, "#") != len(marker) {
			continue
		}

		level := len(marker)
		title := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), marker))
		anchor := strings.ReplaceAll(strings.ToLower(title), " ", "-")

		b.WriteString(strings.Repeat("  ", level-1))
		b.WriteString("- [" + title + "](#" + anchor + ")\n")
	}

	b.WriteString("\n")
	return b.String()
}
