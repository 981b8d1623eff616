package llm

import (
	"context"
	"strings"
)

// Provider names accepted by New.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Config selects and parameterizes a provider.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	// KeyEnv is the environment variable APIKey was read from; it is only
	// used to name the missing setting in errors.
	KeyEnv string
	// BaseURL overrides the OpenAI-compatible endpoint.
	BaseURL string
}

// New builds the client for cfg.Provider. A missing credential yields a
// *NotConfiguredError and no network activity; the mock provider is only
// returned when asked for by name.
func New(ctx context.Context, cfg Config) (Client, error) {
	prov := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if prov == "" {
		prov = ProviderGemini
	}
	switch prov {
	case ProviderGemini:
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, &NotConfiguredError{Provider: prov, EnvVar: keyEnv(cfg, "GEMINI_API_KEY")}
		}
		c, err := NewGeminiClient(ctx, cfg.APIKey, modelWithDefault(cfg.Model, DefaultGeminiModel))
		if err != nil {
			return nil, &NotConfiguredError{Provider: prov, EnvVar: keyEnv(cfg, "GEMINI_API_KEY"), Err: err}
		}
		return c, nil
	case ProviderOpenAI:
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, &NotConfiguredError{Provider: prov, EnvVar: keyEnv(cfg, "OPENAI_API_KEY")}
		}
		return NewOpenAIClient(cfg.APIKey, modelWithDefault(cfg.Model, DefaultOpenAIModel), cfg.BaseURL), nil
	case ProviderMock:
		return &MockClient{}, nil
	default:
		return nil, &NotConfiguredError{Provider: prov, EnvVar: "LLM_PROVIDER", Err: errUnknownProvider(prov)}
	}
}

// ModelFor reports the model New would use for cfg.
func ModelFor(cfg Config) string {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI:
		return modelWithDefault(cfg.Model, DefaultOpenAIModel)
	case ProviderMock:
		return "mock"
	default:
		return modelWithDefault(cfg.Model, DefaultGeminiModel)
	}
}

type errUnknownProvider string

func (e errUnknownProvider) Error() string { return "unknown provider " + string(e) }

func modelWithDefault(model, def string) string {
	if v := strings.TrimSpace(model); v != "" {
		return v
	}
	return def
}

func keyEnv(cfg Config, def string) string {
	if cfg.KeyEnv != "" {
		return cfg.KeyEnv
	}
	return def
}
