package domain

// ErrorLabel is the first element of the pair returned for a failed fetch.
const ErrorLabel = "Error"

// Placeholders substituted when an expected element is missing from the page.
const (
	PlaceholderDisplayName = "not available (name element not found)"
	PlaceholderLocation    = "not available (location element not found)"
)

// Profile holds the public fields extracted from a profile page.
type Profile struct {
	DisplayName string `json:"display_name"`
	Location    string `json:"location"`
}

// HasDisplayName returns false when the name element was missing.
func (p Profile) HasDisplayName() bool {
	return p.DisplayName != PlaceholderDisplayName
}

// HasLocation returns false when the location element was missing.
func (p Profile) HasLocation() bool {
	return p.Location != PlaceholderLocation
}

// ProfileOutcome is the result of a profile fetch. It is always well formed,
// so front ends never need to handle errors from a fetch.
type ProfileOutcome struct {
	Outcome

	// Profile is only meaningful when OK is true.
	Profile Profile `json:"profile"`

	// URL is the resolved address that was requested, if resolution succeeded.
	URL string `json:"url,omitempty"`

	// RequestID correlates this outcome with developer log entries.
	RequestID string `json:"request_id,omitempty"`
}

// Pair returns (display name, location) on success and
// ("Error", sanitised message) on failure.
func (o ProfileOutcome) Pair() (string, string) {
	if !o.OK {
		return ErrorLabel, o.Message
	}
	return o.Profile.DisplayName, o.Profile.Location
}
