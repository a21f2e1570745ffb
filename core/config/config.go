// Package config loads the service configuration: a YAML file merged with
// environment overrides. Assets are load-once; there is no runtime reload.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adalundhe/strikegate/core/prompt"
)

// Environment variables honored as overrides.
const (
	EnvConfigPath = "STRIKEGATE_CONFIG"
	EnvAddr       = "STRIKEGATE_ADDR"
	EnvAuthToken  = "STRIKEGATE_AUTH_TOKEN"
	EnvAPIKey     = "ANTHROPIC_API_KEY"
)

// DefaultPath is consulted when no path is given explicitly or via env.
const DefaultPath = "strikegate.yaml"

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Prompt    PromptConfig    `yaml:"prompt"`
}

type ServerConfig struct {
	Addr                  string `yaml:"addr"`
	AuthToken             string `yaml:"auth_token"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	BaseURL   string `yaml:"base_url"`
}

type PromptConfig struct {
	SystemPath string `yaml:"system_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:                  ":8080",
			RequestTimeoutSeconds: 120,
		},
		Anthropic: AnthropicConfig{
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 8192,
		},
		Prompt: PromptConfig{
			SystemPath: prompt.DefaultSystemPath,
		},
	}
}

// Load reads the config file at path, falling back to STRIKEGATE_CONFIG
// and then DefaultPath. A missing file yields the defaults; a file that
// exists but cannot be parsed is an error. Environment overrides are
// applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults plus env carry the service.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvAuthToken); v != "" {
		c.Server.AuthToken = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Anthropic.APIKey = v
	}
}
