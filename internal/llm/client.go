package llm

import (
	"context"
)

// Client is the single external capability the pipeline needs from a model
// provider: one synchronous completion per call.
type Client interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}
