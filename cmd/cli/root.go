package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/readmekit/readmekit/internal/config"
	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/llm"
	"github.com/readmekit/readmekit/internal/logger"
)

var (
	projectPath string
	githubToken string
)

var rootCmd = &cobra.Command{
	Use:   "readmekit",
	Short: "readmekit generates polished README files from a project description.",
	Long: `A CLI for generating README files. Project facts live in a YAML file;
generation runs through an AI model when an API key is configured and falls
back to built-in templates otherwise.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "readmekit.yml", "Project description file")
	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub Token")

	if err := viper.BindPFlag("GITHUB_TOKEN", rootCmd.PersistentFlags().Lookup("github-token")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// setup loads the configuration and builds the CLI logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return cfg, log, nil
}

// newCompleter builds the remote completion client, or nil when no API key is
// configured so generation falls back to the local templates.
func newCompleter(cfg *config.Config, log *slog.Logger) core.Completer {
	if cfg.APIKey == "" {
		return nil
	}
	return llm.NewClient(llm.Config{
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Referer:  cfg.Referer,
		AppTitle: cfg.AppTitle,
	}, log)
}
