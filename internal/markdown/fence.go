package markdown

import "strings"

// StripFence removes a ```markdown or ```md code fence wrapping the whole
// document. Chat models routinely wrap their answer in one even when asked
// for raw Markdown.
func StripFence(doc string) string {
	trimmed := strings.TrimSpace(doc)
	if !strings.HasPrefix(trimmed, "```markdown") && !strings.HasPrefix(trimmed, "```md") {
		return doc
	}

	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return doc
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}
