package mcp

import (
	"context"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// mockResetService is a mock implementation of driving.ResetService.
type mockResetService struct {
	requests []domain.ResetRequest
	outcome  *domain.Outcome
}

func (m *mockResetService) Reset(req domain.ResetRequest) domain.Outcome {
	m.requests = append(m.requests, req)
	if m.outcome != nil {
		return *m.outcome
	}
	return domain.Success(domain.MsgResetSucceeded)
}

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	outcome domain.ProfileOutcome
	targets []string
	byIDs   []string
}

func (m *mockProfileService) Fetch(_ context.Context, target string) domain.ProfileOutcome {
	m.targets = append(m.targets, target)
	return m.outcome
}

func (m *mockProfileService) FetchByID(_ context.Context, id string) domain.ProfileOutcome {
	m.byIDs = append(m.byIDs, id)
	return m.outcome
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(*domain.AppSettings) error { return nil }

func (m *mockSettingsService) Set(string, string) error { return nil }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

var (
	_ driving.ResetService    = (*mockResetService)(nil)
	_ driving.ProfileService  = (*mockProfileService)(nil)
	_ driving.SettingsService = (*mockSettingsService)(nil)
)

func found() domain.ProfileOutcome {
	return domain.ProfileOutcome{
		Outcome:   domain.Success("profile fetched"),
		Profile:   domain.Profile{DisplayName: "Ana Horvat", Location: "Zagreb"},
		URL:       "https://example.test/profil/ana",
		RequestID: "req-1",
	}
}

func notFound() domain.ProfileOutcome {
	return domain.ProfileOutcome{
		Outcome:   domain.Failure(domain.CategoryNotFound, "profile not found; check the URL/code"),
		URL:       "https://example.test/profil/nobody",
		RequestID: "req-2",
	}
}

func newTestServer(profile *mockProfileService) (*Server, *mockResetService) {
	reset := &mockResetService{}
	s, err := NewServer(&Ports{Reset: reset, Profile: profile})
	if err != nil {
		panic(err)
	}
	return s, reset
}
