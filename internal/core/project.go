// Package core defines the domain types shared by all readmekit components:
// the project field model, generation options and results, the error taxonomy,
// and the narrow interfaces the orchestrator depends on.
package core

import "path/filepath"

// BadgeStyle selects the shields.io style query parameter.
type BadgeStyle string

const (
	BadgeStyleFlat        BadgeStyle = "flat"
	BadgeStylePlastic     BadgeStyle = "plastic"
	BadgeStyleForTheBadge BadgeStyle = "for-the-badge"
)

// Image is a single image reference embedded into the README.
type Image struct {
	Path string `yaml:"path" json:"path"`
	Alt  string `yaml:"alt" json:"alt"`
}

// Project is the field model: every documentation fact collected for a
// project. It is populated by the caller (CLI flags, project file, analyzer,
// HTTP request) and passed read-only into the render, prompt, and generate
// operations; none of them mutate it.
type Project struct {
	Name        string `yaml:"name" json:"name"`
	Tagline     string `yaml:"tagline" json:"tagline"`
	Description string `yaml:"description" json:"description"`
	Purpose     string `yaml:"purpose" json:"purpose"`

	Features []string   `yaml:"features" json:"features"`
	Badges   []string   `yaml:"badges" json:"badges"`
	Style    BadgeStyle `yaml:"badge_style" json:"badge_style"`

	Installation string `yaml:"installation" json:"installation"`
	Usage        string `yaml:"usage" json:"usage"`
	Roadmap      string `yaml:"roadmap" json:"roadmap"`
	Contributing string `yaml:"contributing" json:"contributing"`
	License      string `yaml:"license" json:"license"`

	Dependencies []string `yaml:"dependencies" json:"dependencies"`
	Images       []Image  `yaml:"images" json:"images"`
	DirTree      string   `yaml:"dir_tree" json:"dir_tree"`
	Languages    []string `yaml:"languages" json:"languages"`

	// Repository is the "owner/name" slug used by the push command and
	// filled in by the analyzer when it can detect an origin remote.
	Repository string `yaml:"repository" json:"repository"`

	// Template names the renderer template used for preview and fallback.
	Template string `yaml:"template" json:"template"`
}

// AddFeature appends a feature. Duplicates are allowed, order is preserved.
func (p *Project) AddFeature(f string) {
	p.Features = append(p.Features, f)
}

// AddBadge appends a badge key, keeping the badge list an insertion-ordered
// set. It does not validate the key; unknown keys fail later at render time.
func (p *Project) AddBadge(name string) {
	for _, b := range p.Badges {
		if b == name {
			return
		}
	}
	p.Badges = append(p.Badges, name)
}

// AddImage appends an image reference, defaulting the alt text to the image
// file name when the caller did not supply one.
func (p *Project) AddImage(path, alt string) {
	if alt == "" {
		alt = filepath.Base(path)
	}
	p.Images = append(p.Images, Image{Path: path, Alt: alt})
}

// Normalize fills defaults a loaded project may be missing: the badge style,
// the template name, and image alt texts.
func (p *Project) Normalize() {
	if p.Style == "" {
		p.Style = BadgeStyleFlat
	}
	if p.Template == "" {
		p.Template = "Standard"
	}
	for i := range p.Images {
		if p.Images[i].Alt == "" {
			p.Images[i].Alt = filepath.Base(p.Images[i].Path)
		}
	}
}
