package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/readmekit/readmekit/internal/db"
	"github.com/readmekit/readmekit/internal/export"
	"github.com/readmekit/readmekit/internal/storage"
)

var (
	historyLimit  int
	historyJSON   bool
	historyOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage previously generated READMEs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past generations, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		docs, err := store.ListDocuments(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		if historyJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(docs)
		}

		if len(docs) == 0 {
			fmt.Println("History is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tPROJECT\tSOURCE\tCREATED")
		for _, doc := range docs {
			source := color.GreenString("model")
			if doc.UsedFallback {
				source = color.YellowString("template")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				doc.ID,
				doc.Name,
				source,
				doc.CreatedAt.Format(time.RFC822),
			)
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a past generation, or export it with --output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		doc, err := store.GetDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if historyOutput != "" {
			if err := export.WriteMarkdown(historyOutput, doc.Content); err != nil {
				return err
			}
			color.Green("README written to %s", historyOutput)
			return nil
		}

		fmt.Print(doc.Content)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all past generations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.DeleteAll(cmd.Context()); err != nil {
			return err
		}
		color.Green("History cleared.")
		return nil
	},
}

// openStore opens the history database for one command invocation.
func openStore() (storage.Store, func(), error) {
	cfg, _, err := setup()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewStore(conn.DB), func() { _ = conn.Close() }, nil
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to list")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "Output history as JSON")
	historyShowCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Write the README to this file instead of stdout")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
