package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "AI sales assistance",
	Long: `Assist commands call the configured AI provider. When no provider
is configured, or a call fails, each command prints a safe fallback
instead of erroring out.`,
}

var assistFollowupCmd = &cobra.Command{
	Use:   "followup [lead-id]",
	Short: "Draft a follow-up message for a lead",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistFollowup,
}

var assistScoreCmd = &cobra.Command{
	Use:   "score [lead-id]",
	Short: "Score a lead's quality",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistScore,
}

var assistGrammarCmd = &cobra.Command{
	Use:   "grammar [text]",
	Short: "Fix grammar and spelling in a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistGrammar,
}

var assistTasksCmd = &cobra.Command{
	Use:   "tasks [lead-id]",
	Short: "Suggest next-step tasks for a lead",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistTasks,
}

// assistApply adds the suggested tasks to the lead instead of only
// printing them.
var assistApply bool

func init() {
	assistTasksCmd.Flags().BoolVar(&assistApply, "apply", false, "Add the suggested tasks to the lead")

	assistCmd.AddCommand(assistFollowupCmd)
	assistCmd.AddCommand(assistScoreCmd)
	assistCmd.AddCommand(assistGrammarCmd)
	assistCmd.AddCommand(assistTasksCmd)
	rootCmd.AddCommand(assistCmd)
}

func runAssistFollowup(cmd *cobra.Command, args []string) error {
	if assistService == nil {
		return errors.New("assist service not configured")
	}

	cmd.Println(assistService.FollowUp(context.Background(), args[0]))
	return nil
}

func runAssistScore(cmd *cobra.Command, args []string) error {
	if assistService == nil {
		return errors.New("assist service not configured")
	}

	cmd.Println(assistService.QualityScore(context.Background(), args[0]))
	return nil
}

func runAssistGrammar(cmd *cobra.Command, args []string) error {
	if assistService == nil {
		return errors.New("assist service not configured")
	}

	cmd.Println(assistService.FixGrammar(context.Background(), args[0]))
	return nil
}

func runAssistTasks(cmd *cobra.Command, args []string) error {
	if assistService == nil {
		return errors.New("assist service not configured")
	}

	ctx := context.Background()
	suggestions := assistService.SuggestTasks(ctx, args[0])
	if len(suggestions) == 0 {
		cmd.Println("No suggestions")
		return nil
	}

	for _, sg := range suggestions {
		cmd.Printf("- [%s/%s] %s\n", sg.Type, sg.Priority, sg.Title)
	}

	if !assistApply {
		return nil
	}
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	due := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	for _, sg := range suggestions {
		err := crmService.AddTask(ctx, args[0], driving.NewTask{
			Title:      sg.Title,
			Type:       sg.Type,
			Priority:   sg.Priority,
			TargetDate: due,
		})
		if err != nil {
			return fmt.Errorf("failed to add suggested task: %w", err)
		}
	}
	cmd.Printf("Added %d tasks\n", len(suggestions))
	return nil
}
