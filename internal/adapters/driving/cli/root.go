// Package cli provides the cobra command surface for Nexus CRM.
// Commands are thin: they validate input, call driving services, and
// print results. All state changes go through the store engine.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
	"github.com/nexuslabs/nexus-crm/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// PathPicker receives the file path the connect command was given
// before the mirror service runs its selection flow.
type PathPicker interface {
	SetPath(path string)
}

// Services injected by the composition root before Execute runs.
var (
	crmService      driving.CRMService
	mirrorService   driving.MirrorService
	assistService   driving.AssistService
	settingsService driving.SettingsService
	mirrorPicker    PathPicker
)

// Services bundles everything the commands need.
type Services struct {
	CRM      driving.CRMService
	Mirror   driving.MirrorService
	Assist   driving.AssistService
	Settings driving.SettingsService
	Picker   PathPicker
}

// SetServices wires the commands to their services.
func SetServices(s Services) {
	crmService = s.CRM
	mirrorService = s.Mirror
	assistService = s.Assist
	settingsService = s.Settings
	mirrorPicker = s.Picker
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Local-first sales CRM",
	Long: `Nexus CRM keeps your leads, tasks and notifications on your own
machine: everything lives in a local cache and, optionally, in a plain
JSON file you choose. No server, no account, no sync service.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
