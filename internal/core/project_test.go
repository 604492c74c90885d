package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFeatureKeepsOrderAndDuplicates(t *testing.T) {
	p := &Project{}
	p.AddFeature("fast")
	p.AddFeature("simple")
	p.AddFeature("fast")

	assert.Equal(t, []string{"fast", "simple", "fast"}, p.Features)
}

func TestAddBadgeDeduplicates(t *testing.T) {
	p := &Project{}
	p.AddBadge("Go")
	p.AddBadge("MIT")
	p.AddBadge("Go")

	assert.Equal(t, []string{"Go", "MIT"}, p.Badges)
}

func TestAddImageDefaultsAlt(t *testing.T) {
	p := &Project{}
	p.AddImage("assets/logo.png", "")
	p.AddImage("assets/shot.png", "Screenshot")

	assert.Equal(t, []Image{
		{Path: "assets/logo.png", Alt: "logo.png"},
		{Path: "assets/shot.png", Alt: "Screenshot"},
	}, p.Images)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	p := &Project{Images: []Image{{Path: "a/b.png"}}}
	p.Normalize()

	assert.Equal(t, BadgeStyleFlat, p.Style)
	assert.Equal(t, "Standard", p.Template)
	assert.Equal(t, "b.png", p.Images[0].Alt)

	p2 := &Project{Style: BadgeStylePlastic, Template: "Minimal"}
	p2.Normalize()
	assert.Equal(t, BadgeStylePlastic, p2.Style)
	assert.Equal(t, "Minimal", p2.Template)
}
