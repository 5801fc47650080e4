package driving

import "github.com/nexuslabs/nexus-crm/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetAssistProvider configures the sales assistant provider.
	SetAssistProvider(provider domain.AssistProvider, model, apiKey string) error

	// SetMirrorPath records the last attached mirror file so it can be
	// re-attached on the next start.
	SetMirrorPath(path string) error

	// ClearMirrorPath forgets the recorded mirror file.
	ClearMirrorPath() error
}
