package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/readmekit/readmekit/internal/config"
	"github.com/readmekit/readmekit/internal/github"
	"github.com/readmekit/readmekit/internal/gitutil"
)

var (
	pushRepo   string
	pushBranch string
	pushFile   string
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push a generated README to a GitHub repository",
	Long: `Creates or updates README.md on the given branch. The target repository
defaults to the repository recorded in the project file. A GitHub token with
write access is required.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, log, err := setup()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		token := viper.GetString("GITHUB_TOKEN")
		if token == "" {
			return errors.New("a GitHub token is required, set GITHUB_TOKEN or use --github-token")
		}

		slug := pushRepo
		if slug == "" {
			p, err := config.LoadProject(projectPath)
			if err != nil {
				return fmt.Errorf("no --repo given and the project file could not be read: %w", err)
			}
			slug = p.Repository
		}
		if slug == "" {
			return errors.New("no target repository, set --repo or the repository field in the project file")
		}

		owner, repo, err := gitutil.ParseRepoSlug(slug)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(pushFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", pushFile, err)
		}

		ghClient := github.NewPATClient(cmd.Context(), token, log)
		if err := ghClient.PutReadme(cmd.Context(), owner, repo, pushBranch, content); err != nil {
			return fmt.Errorf("failed to push README: %w", err)
		}

		color.Green("Pushed %s to %s/%s@%s", pushFile, owner, repo, pushBranch)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	pushCmd.Flags().StringVarP(&pushRepo, "repo", "r", "", "Target repository as owner/repo")
	pushCmd.Flags().StringVarP(&pushBranch, "branch", "b", "main", "Target branch")
	pushCmd.Flags().StringVarP(&pushFile, "file", "f", "README.md", "README file to push")

	rootCmd.AddCommand(pushCmd)
}
