package driving

import (
	"context"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

// ProfileService fetches public profile information.
type ProfileService interface {
	// Fetch retrieves a profile by absolute URL, or by identifier when the
	// target is not an http(s) URL. It always returns a well-formed outcome.
	Fetch(ctx context.Context, target string) domain.ProfileOutcome

	// FetchByID retrieves a profile through the fixed URL template.
	FetchByID(ctx context.Context, id string) domain.ProfileOutcome
}
