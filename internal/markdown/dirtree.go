package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const treeIndent = "    "

// DirTree renders a directory as an indented listing inside a fenced code
// block. The walk is depth-first pre-order with entries sorted by name, so
// the output is reproducible across runs. Entries deeper than maxDepth are
// omitted entirely; the root directory is depth 0.
func DirTree(root string, maxDepth int) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", root)
	}

	var b strings.Builder
	b.WriteString("```\n")
	if err := writeTree(&b, root, 0, maxDepth); err != nil {
		return "", err
	}
	b.WriteString("```\n")
	return b.String(), nil
}

func writeTree(b *strings.Builder, dir string, depth, maxDepth int) error {
	b.WriteString(strings.Repeat(treeIndent, depth))
	b.WriteString(filepath.Base(dir) + "/\n")

	if depth+1 > maxDepth {
		return nil
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		b.WriteString(strings.Repeat(treeIndent, depth+1))
		b.WriteString(e.Name() + "\n")
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := writeTree(b, filepath.Join(dir, e.Name()), depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}
