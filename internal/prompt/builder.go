// Package prompt turns a project field model into the single instruction
// string sent to the external text-generation collaborator. Prompt text lives
// in embedded .prompt files so wording changes never touch Go code.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/readmekit/readmekit/internal/core"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

const readmeKey = "readme"

// Builder renders generation prompts from the embedded templates.
type Builder struct {
	prompts map[string]*template.Template
}

// NewBuilder parses every embedded .prompt file, keyed by file base name.
func NewBuilder() (*Builder, error) {
	files, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts directory: %w", err)
	}

	b := &Builder{prompts: make(map[string]*template.Template)}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := strings.TrimSuffix(file.Name(), ".prompt")
		content, err := promptFiles.ReadFile("prompts/" + file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt %s: %w", file.Name(), err)
		}
		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt %s: %w", file.Name(), err)
		}
		b.prompts[name] = tmpl
	}
	return b, nil
}

// promptData is the type-safe payload for the readme prompt template.
type promptData struct {
	Template    string
	ProfileMode bool
	UseEmojis   bool
	Sections    string
	Facts       string
}

// Build produces the instruction string for one generation. It is a total
// function of its inputs: the same project and options always yield the same
// prompt, which keeps orchestrator tests deterministic with a stubbed
// completer.
func (b *Builder) Build(p *core.Project, opts core.Options) (string, error) {
	tmpl, ok := b.prompts[readmeKey]
	if !ok {
		return "", fmt.Errorf("no prompt registered for key %q", readmeKey)
	}

	data := promptData{
		Template:    p.Template,
		ProfileMode: opts.ProfileMode,
		UseEmojis:   opts.UseEmojis,
		Sections:    strings.Join(sections(p, opts), ", "),
		Facts:       factBlock(p),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// sections lists the README sections in their fixed order. The table of
// contents is deliberately absent: the post-processor injects it so anchors
// stay consistent with our own algorithm.
func sections(p *core.Project, opts core.Options) []string {
	s := []string{"Title", "Tagline"}
	if opts.ProfileMode {
		s = append(s, "Bio", "Skills", "Stats")
	}
	s = append(s, "Description", "Features", "Badges", "Installation",
		"Usage", "Roadmap", "Contributing", "License")
	if p.DirTree != "" {
		s = append(s, "Project Structure")
	}
	return append(s, "Support")
}

// factBlock serializes every project attribute as one "Key: value" line in a
// fixed order, so the remote model sees the full field model with no
// information loss and the serialization is byte-stable.
func factBlock(p *core.Project) string {
	var b strings.Builder
	writeFact := func(key, value string) {
		b.WriteString(key + ": " + value + "\n")
	}

	writeFact("Name", p.Name)
	writeFact("Tagline", p.Tagline)
	writeFact("Description", p.Description)
	writeFact("Purpose", p.Purpose)
	writeFact("Features", strings.Join(p.Features, "; "))
	writeFact("Badges", strings.Join(p.Badges, ", "))
	writeFact("Badge style", string(p.Style))
	writeFact("Installation", p.Installation)
	writeFact("Usage", p.Usage)
	writeFact("Roadmap", p.Roadmap)
	writeFact("Contributing", p.Contributing)
	writeFact("License", p.License)
	writeFact("Dependencies", strings.Join(p.Dependencies, "; "))

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, fmt.Sprintf("%s (%s)", img.Alt, img.Path))
	}
	writeFact("Images", strings.Join(images, ", "))
	writeFact("Languages", strings.Join(p.Languages, ", "))

	if p.DirTree != "" {
		b.WriteString("Project structure:\n" + p.DirTree)
	}
	return b.String()
}
