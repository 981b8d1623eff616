package llm

import (
	"context"
)

// Client sends a single-turn prompt to a remote text-generation service and
// returns the raw text of the reply. Implementations must be safe for
// concurrent use; providers that hold connections also implement io.Closer.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
