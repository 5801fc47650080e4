package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Show leads grouped by pipeline stage",
	Long:  `Shows every pipeline stage with its leads and total value, empty stages included.`,
	Args:  cobra.NoArgs,
	RunE:  runPipeline,
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	leads := crmService.State().Leads
	buckets := domain.StageBuckets(leads)

	for _, stage := range domain.Stages {
		bucket := buckets[stage]
		cmd.Printf("%s: %d leads, $%.0f\n", stage, len(bucket), domain.StageValue(leads, stage))
		for i := range bucket {
			l := &bucket[i]
			cmd.Printf("  %s (%s) $%.0f  %s\n", l.Name, l.Company, l.Value, l.ID)
		}
	}
	return nil
}
