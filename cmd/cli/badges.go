package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/readmekit/readmekit/internal/badge"
	"github.com/readmekit/readmekit/internal/core"
)

var badgesStyle string

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List the badge keys available for the project file",
	RunE: func(_ *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KEY\tSNIPPET")
		for _, name := range badge.Names() {
			snippet, err := badge.Snippet(name, core.BadgeStyle(badgesStyle))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", name, snippet)
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	badgesCmd.Flags().StringVar(&badgesStyle, "style", "flat", "Badge style (flat, plastic, for-the-badge)")

	rootCmd.AddCommand(badgesCmd)
}
