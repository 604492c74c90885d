// Package config loads application settings from the environment and project
// field models from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/readmekit/readmekit/internal/core"
)

var (
	ErrProjectNotFound = errors.New("project file not found")
	ErrProjectParsing  = errors.New("project file parsing failed")
)

// LoadProject reads a project field model from a YAML file and normalizes it
// (badge style, template, image alt defaults).
func LoadProject(path string) (*core.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, path)
		}
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	var p core.Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjectParsing, err)
	}
	p.Normalize()
	return &p, nil
}

// SaveProject writes a project field model back to a YAML file. The analyze
// command uses this to persist auto-filled facts.
func SaveProject(path string, p *core.Project) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project file %s: %w", path, err)
	}
	return nil
}
