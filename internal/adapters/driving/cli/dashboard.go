package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show pipeline totals and recent activity",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	recent := domain.DefaultAppSettings().Dashboard.RecentLeads
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		recent = settings.Dashboard.RecentLeads
	}

	leads := crmService.State().Leads

	cmd.Printf("Pipeline value: $%.0f\n", domain.TotalValue(leads))
	cmd.Printf("Won value: $%.0f\n", domain.WonValue(leads))
	cmd.Printf("Active leads: %d of %d\n", domain.ActiveLeadCount(leads), len(leads))
	cmd.Printf("Pending tasks: %d\n", len(domain.PendingTasks(leads)))

	assist := "off"
	if assistService != nil && assistService.Enabled() {
		assist = "ready"
	}
	cmd.Printf("AI assist: %s\n", assist)

	if len(leads) == 0 {
		return nil
	}
	cmd.Println("\nRecent activity:")
	for _, l := range domain.RecentLeads(leads, recent) {
		cmd.Printf("  %s (%s): %s, last activity %s\n",
			l.Name, l.Company, l.Stage, l.LastActivity.Format("2006-01-02 15:04"))
	}
	return nil
}
