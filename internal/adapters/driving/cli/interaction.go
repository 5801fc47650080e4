package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
)

var interactionCmd = &cobra.Command{
	Use:   "interaction",
	Short: "Log contact events on leads",
}

var interactionAddCmd = &cobra.Command{
	Use:   "add [lead-id] [content]",
	Short: "Log an interaction with a lead",
	Args:  cobra.ExactArgs(2),
	RunE:  runInteractionAdd,
}

// Flags for interaction add.
var (
	interactionType string
	interactionFix  bool
)

func init() {
	interactionAddCmd.Flags().StringVar(&interactionType, "type", "Note", "Interaction type (Call, LinkedIn, Email, Note)")
	interactionAddCmd.Flags().BoolVar(&interactionFix, "fix-grammar", false, "Run the note through the AI grammar fixer first")

	interactionCmd.AddCommand(interactionAddCmd)
	rootCmd.AddCommand(interactionCmd)
}

func runInteractionAdd(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	content := strings.TrimSpace(args[1])
	if content == "" {
		return fmt.Errorf("%w: interaction content must not be empty", domain.ErrInvalidInput)
	}

	ctx := context.Background()
	if interactionFix && assistService != nil {
		content = assistService.FixGrammar(ctx, content)
	}

	err := crmService.AddInteraction(ctx, args[0], driving.NewInteraction{
		Type:    domain.InteractionType(interactionType),
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}
	cmd.Printf("Logged %s interaction on lead %s\n", interactionType, args[0])
	return nil
}
