// ABOUTME: Summary engine interface for text condensation backends
// ABOUTME: Allows swapping the model provider and mocking engine failures in tests

package interfaces

import "context"

// SummaryEngine condenses a text to between minTokens and maxTokens length
// units. Implementations must be deterministic (no sampling). A failed call
// returns an error; the caller applies its documented fallback.
type SummaryEngine interface {
	Condense(ctx context.Context, text string, minTokens, maxTokens int) (string, error)
}
