package services

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyFetchTimeout   = "fetch.timeout_seconds"
	KeyProfileBaseURL = "fetch.profile_base_url"
	KeyMaxBodyBytes   = "fetch.max_body_bytes"
	KeyLogFile        = "log.file"
	KeyLogConsole     = "log.console"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, fmt.Errorf("settings: %w", domain.ErrNotConfigured)
	}

	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Fetch: domain.FetchSettings{
			Timeout:        time.Duration(s.getInt(KeyFetchTimeout, int(defaults.Fetch.Timeout/time.Second))) * time.Second,
			ProfileBaseURL: s.getString(KeyProfileBaseURL, defaults.Fetch.ProfileBaseURL),
			MaxBodyBytes:   int64(s.getInt(KeyMaxBodyBytes, int(defaults.Fetch.MaxBodyBytes))),
		},
		Log: domain.LogSettings{
			File:    s.getString(KeyLogFile, defaults.Log.File),
			Console: s.getBool(KeyLogConsole, defaults.Log.Console),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return fmt.Errorf("settings: %w", domain.ErrNotConfigured)
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(KeyFetchTimeout, int(settings.Fetch.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save fetch timeout: %w", err)
	}
	if err := s.configStore.Set(KeyProfileBaseURL, settings.Fetch.ProfileBaseURL); err != nil {
		return fmt.Errorf("save profile base url: %w", err)
	}
	if err := s.configStore.Set(KeyMaxBodyBytes, int(settings.Fetch.MaxBodyBytes)); err != nil {
		return fmt.Errorf("save max body bytes: %w", err)
	}
	if err := s.configStore.Set(KeyLogFile, settings.Log.File); err != nil {
		return fmt.Errorf("save log file: %w", err)
	}
	if err := s.configStore.Set(KeyLogConsole, settings.Log.Console); err != nil {
		return fmt.Errorf("save log console: %w", err)
	}

	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("settings: %w", domain.ErrNotConfigured)
	}

	switch key {
	case KeyFetchTimeout:
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("%w: %s must be a positive number of seconds", domain.ErrInvalidSetting, key)
		}
		return s.configStore.Set(key, secs)

	case KeyMaxBodyBytes:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive byte count", domain.ErrInvalidSetting, key)
		}
		return s.configStore.Set(key, n)

	case KeyProfileBaseURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute http(s) URL", domain.ErrInvalidSetting, key)
		}
		return s.configStore.Set(key, value)

	case KeyLogFile:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidSetting, key)
		}
		return s.configStore.Set(key, value)

	case KeyLogConsole:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidSetting, key)
		}
		return s.configStore.Set(key, b)

	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}
}

// Keys lists the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{KeyFetchTimeout, KeyProfileBaseURL, KeyMaxBodyBytes, KeyLogFile, KeyLogConsole}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
