package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/readmekit/readmekit/internal/db"
	"github.com/readmekit/readmekit/internal/storage"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview [file-or-history-id]",
	Short: "Render a README in the terminal",
	Long: `Pretty-prints a Markdown file in the terminal. The argument is a file
path, or a history id from a previous generation. Without an argument,
README.md in the current directory is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "README.md"
		if len(args) == 1 {
			target = args[0]
		}

		content, err := loadPreviewContent(cmd, target)
		if err != nil {
			return err
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(previewWidth),
		)
		if err != nil {
			return fmt.Errorf("failed to create terminal renderer: %w", err)
		}

		out, err := renderer.Render(content)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

// loadPreviewContent reads the target as a file first, then falls back to a
// history lookup by id.
func loadPreviewContent(cmd *cobra.Command, target string) (string, error) {
	if data, err := os.ReadFile(target); err == nil {
		return string(data), nil
	}

	cfg, _, err := setup()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	doc, err := storage.NewStore(conn.DB).GetDocument(cmd.Context(), target)
	if err != nil {
		return "", fmt.Errorf("%s is neither a readable file nor a history id: %w", target, err)
	}
	return doc.Content, nil
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 100, "Word wrap width")

	rootCmd.AddCommand(previewCmd)
}
