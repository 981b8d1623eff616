// Package requestid carries a per-request identifier through contexts so the
// access log and the planner log lines can be correlated.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header the id is read from and echoed in.
const Header = "X-Request-ID"

type ctxKey string

var ctxRequestIDKey ctxKey = "request_id"

// New returns a fresh random id.
func New() string { return uuid.NewString() }

func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, id)
}

// FromContext returns the id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestIDKey).(string)
	return id
}
