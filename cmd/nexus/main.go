package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/assist/gemini"
	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/assist/null"
	configfile "github.com/nexuslabs/nexus-crm/internal/adapters/driven/config/file"
	mirrorfile "github.com/nexuslabs/nexus-crm/internal/adapters/driven/mirror/file"
	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/storage/memory"
	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/storage/sqlite"
	"github.com/nexuslabs/nexus-crm/internal/adapters/driving/cli"
	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/core/services"
	"github.com/nexuslabs/nexus-crm/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialize config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// The cache is best-effort: if the database cannot be opened the
	// session runs on the seed state in memory rather than failing.
	var cache driven.StateStore
	cache, err = sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		logger.Warn("cache unavailable, running in memory: %v", err)
		cache = memory.NewStateStore()
	}
	defer cache.Close()

	crmService := services.NewCRMService(ctx, cache)

	assistant := buildAssistant(settings)
	defer assistant.Close()
	assistService := services.NewAssistService(crmService, assistant)

	picker := mirrorfile.NewPicker("")
	openMirror := func(path string) (driven.MirrorStore, error) {
		return mirrorfile.NewStore(path)
	}
	mirrorService := services.NewMirrorService(crmService, picker, openMirror, settingsService)
	defer mirrorService.Close()

	// Re-attach the remembered mirror so this run's changes land in the
	// file too. Failure only means the mirror stays detached.
	if settings.Mirror.Auto && settings.Mirror.Path != "" {
		if store, err := mirrorfile.NewStore(settings.Mirror.Path); err != nil {
			logger.Warn("reopen mirror %s: %v", settings.Mirror.Path, err)
		} else if err := mirrorService.Attach(ctx, store); err != nil {
			logger.Warn("re-attach mirror %s: %v", settings.Mirror.Path, err)
		}
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		CRM:      crmService,
		Mirror:   mirrorService,
		Assist:   assistService,
		Settings: settingsService,
		Picker:   picker,
	})
	return cli.Execute()
}

// buildAssistant turns the configured provider into an adapter. Any
// configuration problem degrades to the null assistant; assist
// features then return their fallbacks instead of erroring.
func buildAssistant(settings *domain.AppSettings) driven.SalesAssistant {
	if settings.Assist.Provider != domain.AssistProviderGemini {
		return null.NewAssistant()
	}

	assistant, err := gemini.NewAssistant(gemini.Config{
		APIKey:  settings.Assist.APIKey,
		BaseURL: settings.Assist.BaseURL,
		Model:   settings.Assist.Model,
	})
	if err != nil {
		logger.Warn("assistant unavailable: %v", err)
		return null.NewAssistant()
	}
	return assistant
}
