package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the AI assistant, storage location, and the
remembered mirror file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsAssistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Configure the AI assistant",
	Long:  `Select the assistant provider and supply its model and API key.`,
	RunE:  runSettingsAssist,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsAssistCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Assist]")
	cmd.Printf("  Provider: %s\n", settings.Assist.Provider.Description())
	if settings.Assist.Provider != domain.AssistProviderNone {
		cmd.Printf("  Model: %s\n", settings.Assist.Model)
		if settings.Assist.BaseURL != "" {
			cmd.Printf("  Base URL: %s\n", settings.Assist.BaseURL)
		}
	}
	if settings.Assist.Provider.RequiresAPIKey() {
		if settings.Assist.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Assist.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	cmd.Println()

	cmd.Println("[Storage]")
	dir := settings.Storage.DataDir
	if dir == "" {
		dir = "(default)"
	}
	cmd.Printf("  Data directory: %s\n", dir)
	cmd.Println()

	cmd.Println("[Mirror]")
	if settings.Mirror.Path == "" {
		cmd.Println("  Remembered file: (none)")
	} else {
		cmd.Printf("  Remembered file: %s\n", settings.Mirror.Path)
	}
	auto := "on"
	if !settings.Mirror.Auto {
		auto = "off"
	}
	cmd.Printf("  Reconnect at startup: %s\n", auto)

	return nil
}

func runSettingsAssist(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select Assist Provider")
	providers := domain.AllAssistProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selected := providers[idx-1]

	if selected == domain.AssistProviderNone {
		if err := settingsService.SetAssistProvider(selected, "", ""); err != nil {
			return fmt.Errorf("failed to configure assist provider: %w", err)
		}
		cmd.Println("Assist features disabled")
		return nil
	}

	defaults := domain.DefaultAppSettings()
	cmd.Printf("Enter model name [%s]: ", defaults.Assist.Model)
	model := readLine(reader)
	if model == "" {
		model = defaults.Assist.Model
	}

	var apiKey string
	if selected.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetAssistProvider(selected, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure assist provider: %w", err)
	}

	cmd.Printf("Assist provider configured: %s (%s)\n", selected.Description(), model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
