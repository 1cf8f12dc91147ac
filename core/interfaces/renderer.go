// ABOUTME: Renderer interface for pages populated by client-side scripting
// ABOUTME: Abstracts the headless browser so adapters can be tested without one

package interfaces

import "context"

// PageRenderer renders a URL in a scriptable browser and returns the
// fully-loaded document. Each call owns its browser session; the session is
// torn down before the call returns, on every exit path.
type PageRenderer interface {
	RenderHTML(ctx context.Context, url string) (string, error)
}
