package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Log    LogConfig
}

type ServerConfig struct {
	Addr string
}

// GeminiConfig configures the AI advisor. An empty APIKey disables AI calls.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

// LoadEnvFile copies variables from .env files into the process environment.
// A missing file is reported but is not fatal to callers.
func LoadEnvFile(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", "15s")
	v.SetDefault("log.level", "info")

	// API_KEY is the name the dashboard front end has always used.
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{Addr: v.GetString("server.addr")},
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(v.GetString("gemini.api_key")),
			Model:   v.GetString("gemini.model"),
			Timeout: v.GetDuration("gemini.timeout"),
		},
		Log: LogConfig{Level: strings.ToLower(v.GetString("log.level"))},
	}
	if cfg.Gemini.Timeout <= 0 {
		cfg.Gemini.Timeout = 15 * time.Second
	}
	return cfg, nil
}
