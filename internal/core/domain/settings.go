package domain

// AssistProvider identifies an AI service provider for the sales assistant.
type AssistProvider string

// Available assist providers.
const (
	// AssistProviderNone disables the assistant; assist features
	// return fallback values.
	AssistProviderNone AssistProvider = "none"

	// AssistProviderGemini is the Google Gemini cloud API.
	AssistProviderGemini AssistProvider = "gemini"
)

// IsValid returns true if the assist provider is recognised.
func (p AssistProvider) IsValid() bool {
	switch p {
	case AssistProviderNone, AssistProviderGemini:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p AssistProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AssistProvider) Description() string {
	switch p {
	case AssistProviderNone:
		return "None (assist features disabled)"
	case AssistProviderGemini:
		return "Google Gemini (cloud API, requires API key)"
	default:
		return string(p)
	}
}

// RequiresAPIKey returns true if the provider needs an API key.
func (p AssistProvider) RequiresAPIKey() bool {
	return p == AssistProviderGemini
}

// AllAssistProviders returns every selectable provider in menu order.
func AllAssistProviders() []AssistProvider {
	return []AssistProvider{
		AssistProviderNone,
		AssistProviderGemini,
	}
}

// AssistSettings configures the sales assistant.
type AssistSettings struct {
	// Provider selects the assistant backend.
	Provider AssistProvider

	// Model is the provider-specific model name.
	Model string

	// APIKey authenticates against cloud providers.
	APIKey string

	// BaseURL overrides the provider endpoint. Empty uses the default.
	BaseURL string
}

// StorageSettings configures where durable state lives.
type StorageSettings struct {
	// DataDir is the directory holding the cache database.
	// Empty means the per-user default.
	DataDir string
}

// MirrorSettings remembers the external mirror between runs.
type MirrorSettings struct {
	// Path is the last attached mirror file; re-attached best-effort
	// at startup. Empty means no mirror.
	Path string

	// Auto controls whether the remembered file is re-attached at
	// startup. Off, the path is kept but stays dormant until an
	// explicit connect.
	Auto bool
}

// DashboardSettings tunes the dashboard view.
type DashboardSettings struct {
	// RecentLeads is how many recently active leads the dashboard
	// lists. Always positive.
	RecentLeads int
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Assist    AssistSettings
	Storage   StorageSettings
	Mirror    MirrorSettings
	Dashboard DashboardSettings
}

// DefaultAppSettings returns the out-of-the-box configuration:
// no assistant, default data directory, no mirror.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Assist: AssistSettings{
			Provider: AssistProviderNone,
			Model:    "gemini-3-flash-preview",
		},
		Mirror:    MirrorSettings{Auto: true},
		Dashboard: DashboardSettings{RecentLeads: 5},
	}
}
