package services

import (
	"fmt"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAssistProvider = "assist.provider"
	keyAssistModel    = "assist.model"
	keyAssistAPIKey   = "assist.api_key"
	keyAssistBaseURL  = "assist.base_url"
	keyStorageDataDir  = "storage.data_dir"
	keyMirrorPath      = "mirror.path"
	keyMirrorAuto      = "mirror.auto"
	keyDashboardRecent = "dashboard.recent_leads"
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
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Assist: domain.AssistSettings{
			Provider: s.getProvider(defaults.Assist.Provider),
			Model:    s.getString(keyAssistModel, defaults.Assist.Model),
			APIKey:   s.configStore.GetString(keyAssistAPIKey),
			BaseURL:  s.configStore.GetString(keyAssistBaseURL), // No default - empty uses the provider's endpoint
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyStorageDataDir),
		},
		Mirror: domain.MirrorSettings{
			Path: s.configStore.GetString(keyMirrorPath),
			Auto: s.getBool(keyMirrorAuto, defaults.Mirror.Auto),
		},
		Dashboard: domain.DashboardSettings{
			RecentLeads: s.getInt(keyDashboardRecent, defaults.Dashboard.RecentLeads),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyAssistProvider, settings.Assist.Provider.String()); err != nil {
		return fmt.Errorf("save assist provider: %w", err)
	}
	if err := s.configStore.Set(keyAssistModel, settings.Assist.Model); err != nil {
		return fmt.Errorf("save assist model: %w", err)
	}
	if settings.Assist.APIKey != "" {
		if err := s.configStore.Set(keyAssistAPIKey, settings.Assist.APIKey); err != nil {
			return fmt.Errorf("save assist api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyAssistBaseURL, settings.Assist.BaseURL); err != nil {
		return fmt.Errorf("save assist base_url: %w", err)
	}
	if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	if err := s.configStore.Set(keyMirrorPath, settings.Mirror.Path); err != nil {
		return fmt.Errorf("save mirror path: %w", err)
	}
	if err := s.configStore.Set(keyMirrorAuto, settings.Mirror.Auto); err != nil {
		return fmt.Errorf("save mirror auto: %w", err)
	}
	if settings.Dashboard.RecentLeads > 0 {
		if err := s.configStore.Set(keyDashboardRecent, settings.Dashboard.RecentLeads); err != nil {
			return fmt.Errorf("save dashboard recent leads: %w", err)
		}
	}
	return nil
}

// SetAssistProvider configures the sales assistant provider.
func (s *SettingsService) SetAssistProvider(provider domain.AssistProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: assist provider %q", domain.ErrInvalidInput, provider)
	}
	if err := s.configStore.Set(keyAssistProvider, provider.String()); err != nil {
		return fmt.Errorf("save assist provider: %w", err)
	}
	if model != "" {
		if err := s.configStore.Set(keyAssistModel, model); err != nil {
			return fmt.Errorf("save assist model: %w", err)
		}
	}
	if apiKey != "" {
		if err := s.configStore.Set(keyAssistAPIKey, apiKey); err != nil {
			return fmt.Errorf("save assist api_key: %w", err)
		}
	}
	return nil
}

// SetMirrorPath records the last attached mirror file.
func (s *SettingsService) SetMirrorPath(path string) error {
	if err := s.configStore.Set(keyMirrorPath, path); err != nil {
		return fmt.Errorf("save mirror path: %w", err)
	}
	return nil
}

// ClearMirrorPath forgets the recorded mirror file.
func (s *SettingsService) ClearMirrorPath() error {
	if err := s.configStore.Delete(keyMirrorPath); err != nil {
		return fmt.Errorf("clear mirror path: %w", err)
	}
	return nil
}

func (s *SettingsService) getProvider(fallback domain.AssistProvider) domain.AssistProvider {
	raw := s.configStore.GetString(keyAssistProvider)
	if raw == "" {
		return fallback
	}
	p := domain.AssistProvider(raw)
	if !p.IsValid() {
		return fallback
	}
	return p
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return fallback
}
