package cli

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/profiltool/internal/adapters/driven/config/file"
	"github.com/custodia-labs/profiltool/internal/adapters/driven/extract"
	"github.com/custodia-labs/profiltool/internal/adapters/driven/web"
	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
	"github.com/custodia-labs/profiltool/internal/core/services"
	"github.com/custodia-labs/profiltool/internal/logger"
)

// RuntimeOptions configures NewRuntime.
type RuntimeOptions struct {
	// ConfigDir holds config.toml and, by default, the log file.
	// Empty means ~/.profiltool.
	ConfigDir string

	// Verbose mirrors debug-level entries to stderr.
	Verbose bool

	// FileOnly keeps entries off stderr regardless of Verbose and
	// log.console. Set it for front ends that draw on the terminal.
	FileOnly bool

	// NewRequestID generates fetch correlation ids (default: uuid.NewString).
	NewRequestID func() string
}

// Runtime is the fully wired application: config store, logger, services.
type Runtime struct {
	ConfigStore *file.ConfigStore
	Settings    *services.SettingsService
	Reset       *services.ResetService
	Profile     *services.ProfileService
	Logger      driven.Logger

	configDir    string
	console      bool
	newRequestID func() string
	closeLog     func() error
}

// NewRuntime wires adapters and services from the config directory.
func NewRuntime(opts RuntimeOptions) (*Runtime, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, err
	}

	console := consoleLogging(opts, settings)
	log, closeLog, err := logger.New(logger.Options{
		File:    resolveLogPath(dir, settings.Log.File),
		Console: console,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	newID := opts.NewRequestID
	if newID == nil {
		newID = uuid.NewString
	}

	rt := &Runtime{
		ConfigStore:  store,
		Settings:     settingsSvc,
		Reset:        services.NewResetService(log),
		Logger:       log,
		configDir:    dir,
		console:      console,
		newRequestID: newID,
		closeLog:     closeLog,
	}
	rt.Profile = rt.buildProfileService(settings)

	log.Debug("runtime ready", driven.Fields{
		"config":  store.Path(),
		"timeout": settings.Fetch.Timeout.String(),
	})
	return rt, nil
}

// ConfigPath returns the settings file location.
func (r *Runtime) ConfigPath() string {
	return r.ConfigStore.Path()
}

// ConsoleLogging reports whether log entries are mirrored to stderr.
func (r *Runtime) ConsoleLogging() bool {
	return r.console
}

// ReloadProfile re-reads the settings file and rebuilds the profile service
// so new timeout, base URL and body cap values take effect.
func (r *Runtime) ReloadProfile() (*services.ProfileService, error) {
	if err := r.ConfigStore.Load(); err != nil {
		r.Logger.Error("settings reload failed", err, driven.Fields{"config": r.ConfigStore.Path()})
		return nil, err
	}
	settings, err := r.Settings.Get()
	if err != nil {
		return nil, err
	}
	r.Profile = r.buildProfileService(settings)
	r.Logger.Info("settings reloaded", driven.Fields{"config": r.ConfigStore.Path()})
	return r.Profile, nil
}

// Close releases the log file.
func (r *Runtime) Close() error {
	if r.closeLog == nil {
		return nil
	}
	return r.closeLog()
}

func (r *Runtime) buildProfileService(settings *domain.AppSettings) *services.ProfileService {
	fetcher := web.NewFetcher(web.Config{
		Timeout:      settings.Fetch.Timeout,
		MaxBodyBytes: settings.Fetch.MaxBodyBytes,
	}, r.Logger)

	return services.NewProfileService(
		fetcher,
		extract.New(extract.Config{}),
		settings.Fetch.ProfileBaseURL,
		r.Logger,
		r.newRequestID,
	)
}

func consoleLogging(opts RuntimeOptions, settings *domain.AppSettings) bool {
	if opts.FileOnly {
		return false
	}
	return settings.Log.Console || opts.Verbose
}

func resolveLogPath(configDir, logFile string) string {
	if logFile == "" {
		logFile = domain.DefaultLogFile
	}
	if filepath.IsAbs(logFile) {
		return logFile
	}
	return filepath.Join(configDir, logFile)
}
