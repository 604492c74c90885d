package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	ServerPort string
	LogLevel   slog.Level
	LogFormat  string

	// Completion endpoint settings. An empty APIKey disables the remote
	// path entirely; generation then always uses the template renderer.
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32

	// Attribution headers sent to OpenRouter.
	Referer  string
	AppTitle string

	GitHubToken string
	DBPath      string
	MaxWorkers  int
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and parses the log level. Viper handles loading
// and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("MODEL", "openai/gpt-4o-mini")
	viper.SetDefault("MAX_TOKENS", 2000)
	viper.SetDefault("TEMPERATURE", 0.3)
	viper.SetDefault("REFERER", "https://github.com/readmekit/readmekit")
	viper.SetDefault("APP_TITLE", "readmekit")
	viper.SetDefault("DB_PATH", "readmekit.db")
	viper.SetDefault("MAX_WORKERS", 4)

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; a malformed one is not.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read .env file: %w", err)
			}
		}
	}
	viper.AutomaticEnv()

	var logLevel slog.Level
	switch strings.ToLower(viper.GetString("LOG_LEVEL")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return &Config{
		ServerPort:  viper.GetString("SERVER_PORT"),
		LogLevel:    logLevel,
		LogFormat:   viper.GetString("LOG_FORMAT"),
		APIKey:      viper.GetString("API_KEY"),
		BaseURL:     viper.GetString("BASE_URL"),
		Model:       viper.GetString("MODEL"),
		MaxTokens:   viper.GetInt("MAX_TOKENS"),
		Temperature: float32(viper.GetFloat64("TEMPERATURE")),
		Referer:     viper.GetString("REFERER"),
		AppTitle:    viper.GetString("APP_TITLE"),
		GitHubToken: viper.GetString("GITHUB_TOKEN"),
		DBPath:      viper.GetString("DB_PATH"),
		MaxWorkers:  viper.GetInt("MAX_WORKERS"),
	}, nil
}
