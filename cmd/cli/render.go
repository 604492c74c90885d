package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/readmekit/readmekit/internal/config"
	"github.com/readmekit/readmekit/internal/export"
	"github.com/readmekit/readmekit/internal/render"
)

var (
	renderOutput   string
	renderTemplate string
	renderList     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a README from a built-in template without calling any AI model",
	RunE: func(_ *cobra.Command, _ []string) error {
		if renderList {
			for _, name := range render.Templates() {
				fmt.Println(name)
			}
			return nil
		}

		p, err := config.LoadProject(projectPath)
		if err != nil {
			return err
		}
		if renderTemplate != "" {
			p.Template = renderTemplate
		}

		content, err := render.Render(p, p.Template)
		if err != nil {
			return err
		}

		if err := export.WriteMarkdown(renderOutput, content); err != nil {
			return err
		}
		color.Green("README written to %s (template %q)", renderOutput, p.Template)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "README.md", "Output file for the rendered README")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Template to render (overrides the project file)")
	renderCmd.Flags().BoolVar(&renderList, "list", false, "List the available templates and exit")

	rootCmd.AddCommand(renderCmd)
}
