package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is wrapped by every provider initialization failure.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrEmptyResponse means the provider answered without any text.
	ErrEmptyResponse = errors.New("llm returned no text")
)

// NotConfiguredError names the setting that kept a provider from starting.
type NotConfiguredError struct {
	Provider string
	EnvVar   string
	Err      error
}

func (e *NotConfiguredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s client: %v (check %s)", e.Provider, e.Err, e.EnvVar)
	}
	return fmt.Sprintf("%s client: %s is not set", e.Provider, e.EnvVar)
}

func (e *NotConfiguredError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNotConfigured}
	}
	return []error{ErrNotConfigured, e.Err}
}
