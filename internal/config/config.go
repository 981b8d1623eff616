// Package config loads the planner's settings.
//
// Precedence, lowest first: built-in defaults, an optional TOML file, the
// process environment (after .env has been merged into it). Credentials are
// only ever taken from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/example/goal-planner/internal/providers/llm"
)

const (
	DefaultAddr      = ":5000"
	DefaultProvider  = llm.ProviderGemini
	DefaultLogFormat = "json"
	DefaultLogLevel  = "info"
)

// Config holds everything the server and CLI need.
type Config struct {
	Addr          string        `toml:"addr"`
	Provider      string        `toml:"provider"`
	Model         string        `toml:"model"`
	OpenAIBaseURL string        `toml:"openai_base_url"`
	Timeout       time.Duration `toml:"timeout"`
	LogFormat     string        `toml:"log_format"`
	LogLevel      string        `toml:"log_level"`

	// Not read from the file.
	APIKey string `toml:"-"`
	KeyEnv string `toml:"-"`

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:      DefaultAddr,
		Provider:  DefaultProvider,
		LogFormat: DefaultLogFormat,
		LogLevel:  DefaultLogLevel,
	}
}

// Load merges .env into the environment, then applies path (if not empty)
// and environment overrides on top of the defaults. A missing credential is
// not an error; it surfaces later as a not-configured provider.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(".env"); err == nil {
		cfg.EnvFileLoaded = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	get := func(k string) string { return strings.TrimSpace(getenv(k)) }

	if v := get("PORT"); v != "" {
		c.Addr = ":" + v
	}
	if v := get("LLM_PROVIDER"); v != "" {
		c.Provider = strings.ToLower(v)
	}
	if v := get("LLM_MODEL"); v != "" {
		c.Model = v
	}
	if v := get("OPENAI_API_BASE"); v != "" {
		c.OpenAIBaseURL = v
	}
	if v := get("LLM_HTTP_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return fmt.Errorf("LLM_HTTP_TIMEOUT_MS: invalid value %q", v)
		}
		c.Timeout = time.Duration(ms) * time.Millisecond
	}
	if v := get("LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v := get("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	c.APIKey, c.KeyEnv = "", ""
	for _, k := range keyEnvs(c.Provider) {
		if v := get(k); v != "" {
			c.APIKey, c.KeyEnv = v, k
			break
		}
	}
	if c.KeyEnv == "" {
		if envs := keyEnvs(c.Provider); len(envs) > 0 {
			c.KeyEnv = envs[0]
		}
	}
	return nil
}

// keyEnvs lists the variables a provider's credential is read from, in
// order of preference.
func keyEnvs(provider string) []string {
	switch provider {
	case llm.ProviderOpenAI:
		return []string{"OPENAI_API_KEY"}
	case llm.ProviderMock:
		return nil
	default:
		return []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}
	}
}

// LLM returns the provider settings.
func (c *Config) LLM() llm.Config {
	return llm.Config{
		Provider: c.Provider,
		Model:    c.Model,
		APIKey:   c.APIKey,
		KeyEnv:   c.KeyEnv,
		BaseURL:  c.OpenAIBaseURL,
	}
}
