package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/readmekit/readmekit/internal/analyze"
	"github.com/readmekit/readmekit/internal/config"
	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/github"
)

var (
	analyzeDir  string
	analyzeRepo string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Auto-fill the project description from a directory or GitHub repository",
	Long: `Inspects a local directory (languages, dependencies, directory tree,
origin remote) or a GitHub repository (name, description, primary language)
and folds the detected facts into the project file. Fields already set by
hand are kept.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if analyzeRepo == "" && analyzeDir == "" {
			return errors.New("either --dir or --repo is required")
		}

		_, log, err := setup()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		p, err := config.LoadProject(projectPath)
		if err != nil {
			if !errors.Is(err, config.ErrProjectNotFound) {
				return err
			}
			p = &core.Project{}
		}

		analyzer := analyze.NewAnalyzer(log)

		if analyzeDir != "" {
			if err := analyzer.Local(analyzeDir, p); err != nil {
				return err
			}
			color.Green("Analyzed %s", analyzeDir)
		}

		if analyzeRepo != "" {
			ghClient := github.NewPATClient(cmd.Context(), viper.GetString("GITHUB_TOKEN"), log)
			if err := analyzer.GitHub(cmd.Context(), analyzeRepo, ghClient, p); err != nil {
				return err
			}
			color.Green("Analyzed %s", analyzeRepo)
		}

		p.Normalize()
		if err := config.SaveProject(projectPath, p); err != nil {
			return err
		}
		color.Green("Project file updated: %s", projectPath)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	analyzeCmd.Flags().StringVarP(&analyzeDir, "dir", "d", "", "Local project directory to inspect")
	analyzeCmd.Flags().StringVarP(&analyzeRepo, "repo", "r", "", "GitHub repository URL to inspect")

	rootCmd.AddCommand(analyzeCmd)
}
