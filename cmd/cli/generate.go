package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/readmekit/readmekit/internal/config"
	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/db"
	"github.com/readmekit/readmekit/internal/export"
	"github.com/readmekit/readmekit/internal/generate"
	"github.com/readmekit/readmekit/internal/prompt"
	"github.com/readmekit/readmekit/internal/storage"
)

var (
	generateOutput      string
	generateHTML        string
	generateTemplate    string
	generateModel       string
	generateMaxTokens   int
	generateTemperature float32
	generateTOC         bool
	generateEmojis      bool
	generateProfile     bool
	generateOffline     bool
	generateNoSave      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a README from the project description",
	Long: `Builds a prompt from the project file and asks the configured AI model
for a README. When no API key is set or the remote call fails, the README is
rendered from the project's template instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		p, err := config.LoadProject(projectPath)
		if err != nil {
			return err
		}
		if generateTemplate != "" {
			p.Template = generateTemplate
		}

		builder, err := prompt.NewBuilder()
		if err != nil {
			return fmt.Errorf("failed to initialize prompt builder: %w", err)
		}

		opts := core.Options{
			AddTOC:      generateTOC,
			UseEmojis:   generateEmojis,
			ProfileMode: generateProfile,
			ModelOptions: core.ModelOptions{
				Model:       cfg.Model,
				MaxTokens:   cfg.MaxTokens,
				Temperature: cfg.Temperature,
			},
		}
		if generateModel != "" {
			opts.Model = generateModel
		}
		if generateMaxTokens > 0 {
			opts.MaxTokens = generateMaxTokens
		}
		if generateTemperature > 0 {
			opts.Temperature = generateTemperature
		}

		completer := newCompleter(cfg, log)
		if generateOffline {
			completer = nil
		}

		generator := generate.NewGenerator(builder, completer, log)
		result, err := generator.Generate(cmd.Context(), p, opts)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if result.UsedFallback {
			color.Yellow("Remote generation unavailable, rendered the %q template instead.", p.Template)
			color.Yellow("Reason: %v", result.Err)
		}

		if err := export.WriteMarkdown(generateOutput, result.Content); err != nil {
			return err
		}
		color.Green("README written to %s", generateOutput)

		if generateHTML != "" {
			if err := export.WriteHTML(generateHTML, result.Content); err != nil {
				return err
			}
			color.Green("HTML preview written to %s", generateHTML)
		}

		if !generateNoSave {
			if err := saveToHistory(cmd.Context(), cfg, p, result); err != nil {
				log.Warn("could not record generation in history", "error", err)
			}
		}
		return nil
	},
}

// saveToHistory records the generated document in the local history database.
func saveToHistory(ctx context.Context, cfg *config.Config, p *core.Project, result *core.Result) error {
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	doc := &core.Document{
		ID:           uuid.NewString(),
		Name:         p.Name,
		Content:      result.Content,
		UsedFallback: result.UsedFallback,
	}
	if result.Err != nil {
		doc.FallbackReason = result.Err.Error()
	}
	return storage.NewStore(conn.DB).SaveDocument(ctx, doc)
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "README.md", "Output file for the generated README")
	generateCmd.Flags().StringVar(&generateHTML, "html", "", "Also export an HTML preview to this file")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "Fallback template to use (overrides the project file)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Model identifier (overrides the configured model)")
	generateCmd.Flags().IntVar(&generateMaxTokens, "max-tokens", 0, "Completion token limit (overrides the configured value)")
	generateCmd.Flags().Float32Var(&generateTemperature, "temperature", 0, "Sampling temperature (overrides the configured value)")
	generateCmd.Flags().BoolVar(&generateOffline, "offline", false, "Skip the AI model and render from the template directly")
	generateCmd.Flags().BoolVar(&generateTOC, "toc", false, "Prepend a table of contents")
	generateCmd.Flags().BoolVar(&generateEmojis, "emojis", false, "Ask the model to decorate section headers with emojis")
	generateCmd.Flags().BoolVar(&generateProfile, "profile", false, "Generate a GitHub profile README instead of a project README")
	generateCmd.Flags().BoolVar(&generateNoSave, "no-save", false, "Do not record the result in the history database")

	rootCmd.AddCommand(generateCmd)
}
