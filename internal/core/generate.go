package core

import "context"

// ModelOptions are the knobs forwarded to the remote chat-completion call.
type ModelOptions struct {
	Model       string  `yaml:"model" json:"model"`
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens"`
	Temperature float32 `yaml:"temperature" json:"temperature"`
}

// Options are per-generation flags. They are not project facts and are never
// persisted with the project file.
type Options struct {
	AddTOC      bool `yaml:"add_toc" json:"add_toc"`
	UseEmojis   bool `yaml:"use_emojis" json:"use_emojis"`
	ProfileMode bool `yaml:"profile_mode" json:"profile_mode"`

	ModelOptions `yaml:",inline" json:"model_options"`
}

// Result is the outcome of one generate invocation. Content is always a
// usable document unless the call returned an error instead; Err carries the
// fallback reason when UsedFallback is set.
type Result struct {
	Content      string
	UsedFallback bool
	Err          error
}

// Completer is the external text-generation collaborator. A single blocking
// call per generation; no retries, no rate limiting. Implementations must be
// safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts ModelOptions) (string, error)
}
