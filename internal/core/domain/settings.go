package domain

import "time"

// Defaults for application settings.
const (
	DefaultFetchTimeout   = 5 * time.Second
	DefaultProfileBaseURL = "https://www.fiktivnistranica.com"
	DefaultMaxBodyBytes   = 2 << 20
	DefaultLogFile        = "app_errors.log"
)

// FetchSettings controls the profile retrieval step.
type FetchSettings struct {
	// Timeout bounds the single GET request.
	Timeout time.Duration

	// ProfileBaseURL is the host used when only an identifier is given.
	ProfileBaseURL string

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64
}

// LogSettings controls the developer log sink.
type LogSettings struct {
	// File is the append-mode log path. Relative paths resolve against the config dir.
	File string

	// Console mirrors log entries to stderr.
	Console bool
}

// AppSettings represents all configurable application settings.
type AppSettings struct {
	// Fetch holds retrieval settings.
	Fetch FetchSettings

	// Log holds logging settings.
	Log LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Fetch: FetchSettings{
			Timeout:        DefaultFetchTimeout,
			ProfileBaseURL: DefaultProfileBaseURL,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Log: LogSettings{
			File:    DefaultLogFile,
			Console: false,
		},
	}
}

// Validate checks that settings can be used to build adapters.
func (s AppSettings) Validate() error {
	if s.Fetch.Timeout <= 0 {
		return ErrInvalidSetting
	}
	if s.Fetch.ProfileBaseURL == "" {
		return ErrInvalidSetting
	}
	if s.Fetch.MaxBodyBytes <= 0 {
		return ErrInvalidSetting
	}
	return nil
}
