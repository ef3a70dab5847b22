// Package imagehost abstracts the external image provider. Uploads happen
// directly from the dashboard browser to the provider; this service only
// deletes images that are no longer referenced.
package imagehost

import (
	"context"
	"net/url"
	"path"
	"strings"
)

// Destroyer removes a hosted image by its provider-side public ID.
type Destroyer interface {
	Destroy(ctx context.Context, publicID string) error
}

// Noop is used when no image host is configured; orphaned images simply stay
// at the provider.
type Noop struct{}

func (Noop) Destroy(context.Context, string) error { return nil }

// PublicIDFromURL derives the provider public ID from a hosted image URL: the
// last path segment without its extension. An empty result means the URL is
// not something Destroy can act on.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
