package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

// Page is a successfully retrieved (2xx) HTTP response.
type Page struct {
	// URL is the address that was requested.
	URL string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// ContentType is the response Content-Type header.
	ContentType string

	// Body is the response body, capped at the configured size.
	Body []byte
}

// PageFetcher performs one outbound GET.
//
// Any failure is returned as a *domain.FetchError whose Error() is safe to
// show to users. Implementations log the full diagnostic themselves.
type PageFetcher interface {
	Get(ctx context.Context, url string) (*Page, error)

	// Timeout returns the bound applied to each request.
	Timeout() time.Duration
}

// ProfileExtractor reads the public profile fields from a page.
//
// A missing element is not an error: the field is set to its placeholder.
// An error is returned only when the document cannot be parsed.
type ProfileExtractor interface {
	Extract(ctx context.Context, page *Page) (domain.Profile, error)
}
