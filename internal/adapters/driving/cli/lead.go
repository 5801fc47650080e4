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

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Manage leads",
	Long:  `Add, list, update, show, or delete sales leads.`,
}

var leadAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new lead",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeadAdd,
}

var leadListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads, newest first",
	Args:  cobra.NoArgs,
	RunE:  runLeadList,
}

var leadShowCmd = &cobra.Command{
	Use:   "show [lead-id]",
	Short: "Show a lead with its history and tasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeadShow,
}

var leadUpdateCmd = &cobra.Command{
	Use:   "update [lead-id]",
	Short: "Update lead fields",
	Long:  `Update a lead. Only the flags you pass change; everything else is kept.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLeadUpdate,
}

var leadDeleteCmd = &cobra.Command{
	Use:   "delete [lead-id]",
	Short: "Delete a lead",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeadDelete,
}

// Flags for lead add / update.
var (
	leadCompany  string
	leadEmail    string
	leadPhone    string
	leadLinkedIn string
	leadValue    float64
	leadStage    string
	leadSource   string
	leadNotes    string
	leadName     string
	leadQuery    string
)

func init() {
	leadAddCmd.Flags().StringVar(&leadCompany, "company", "", "Company name")
	leadAddCmd.Flags().StringVar(&leadEmail, "email", "", "Email address")
	leadAddCmd.Flags().StringVar(&leadPhone, "phone", "", "Phone number")
	leadAddCmd.Flags().StringVar(&leadLinkedIn, "linkedin", "", "LinkedIn profile URL")
	leadAddCmd.Flags().Float64Var(&leadValue, "value", 0, "Deal value")
	leadAddCmd.Flags().StringVar(&leadStage, "stage", "Lead", "Pipeline stage")
	leadAddCmd.Flags().StringVar(&leadSource, "source", "Manual", "Lead source")
	leadAddCmd.Flags().StringVar(&leadNotes, "notes", "", "Free-text notes")

	leadUpdateCmd.Flags().StringVar(&leadName, "name", "", "Contact name")
	leadUpdateCmd.Flags().StringVar(&leadCompany, "company", "", "Company name")
	leadUpdateCmd.Flags().StringVar(&leadEmail, "email", "", "Email address")
	leadUpdateCmd.Flags().StringVar(&leadPhone, "phone", "", "Phone number")
	leadUpdateCmd.Flags().StringVar(&leadLinkedIn, "linkedin", "", "LinkedIn profile URL")
	leadUpdateCmd.Flags().Float64Var(&leadValue, "value", 0, "Deal value")
	leadUpdateCmd.Flags().StringVar(&leadStage, "stage", "", "Pipeline stage")
	leadUpdateCmd.Flags().StringVar(&leadSource, "source", "", "Lead source")
	leadUpdateCmd.Flags().StringVar(&leadNotes, "notes", "", "Free-text notes")

	leadListCmd.Flags().StringVarP(&leadQuery, "search", "s", "", "Filter by name, company, email or notes")

	leadCmd.AddCommand(leadAddCmd)
	leadCmd.AddCommand(leadListCmd)
	leadCmd.AddCommand(leadShowCmd)
	leadCmd.AddCommand(leadUpdateCmd)
	leadCmd.AddCommand(leadDeleteCmd)
	rootCmd.AddCommand(leadCmd)
}

func runLeadAdd(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("%w: lead name must not be empty", domain.ErrInvalidInput)
	}

	stage := domain.Stage(leadStage)
	if !stage.IsValid() {
		return fmt.Errorf("%w: unknown stage %q", domain.ErrInvalidInput, leadStage)
	}
	source := domain.LeadSource(leadSource)
	if !source.IsValid() {
		return fmt.Errorf("%w: unknown source %q", domain.ErrInvalidInput, leadSource)
	}
	if leadValue < 0 {
		return fmt.Errorf("%w: value must not be negative", domain.ErrInvalidInput)
	}

	lead, err := crmService.AddLead(context.Background(), driving.NewLead{
		Name:        name,
		Company:     leadCompany,
		Email:       leadEmail,
		Phone:       leadPhone,
		LinkedInURL: leadLinkedIn,
		Value:       leadValue,
		Stage:       stage,
		Source:      source,
		Notes:       leadNotes,
	})
	if err != nil {
		return fmt.Errorf("failed to add lead: %w", err)
	}

	cmd.Printf("Added lead %s (%s)\n", lead.Name, lead.ID)
	return nil
}

func runLeadList(cmd *cobra.Command, _ []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	state := crmService.State()
	leads := domain.FilterLeads(state.Leads, leadQuery)

	if len(leads) == 0 {
		cmd.Println("No leads found")
		return nil
	}

	for i := range leads {
		l := &leads[i]
		cmd.Printf("  %s\n", l.ID)
		cmd.Printf("    %s (%s)\n", l.Name, l.Company)
		cmd.Printf("    Stage: %s  Value: $%.0f  Source: %s\n", l.Stage, l.Value, l.Source)
		cmd.Printf("    Last activity: %s\n", l.LastActivity.Format("2006-01-02 15:04"))
		cmd.Println()
	}

	cmd.Printf("Total: %d leads, $%.0f pipeline, %d active\n",
		len(leads), domain.TotalValue(leads), domain.ActiveLeadCount(leads))
	return nil
}

func runLeadShow(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	state := crmService.State()
	lead := state.FindLead(args[0])
	if lead == nil {
		return fmt.Errorf("lead %s: %w", args[0], domain.ErrNotFound)
	}

	cmd.Printf("%s (%s)\n", lead.Name, lead.Company)
	cmd.Printf("  Stage: %s  Value: $%.0f  Source: %s\n", lead.Stage, lead.Value, lead.Source)
	if lead.Email != "" {
		cmd.Printf("  Email: %s\n", lead.Email)
	}
	if lead.Phone != "" {
		cmd.Printf("  Phone: %s\n", lead.Phone)
	}
	if lead.LinkedInURL != "" {
		cmd.Printf("  LinkedIn: %s\n", lead.LinkedInURL)
	}
	if lead.Notes != "" {
		cmd.Printf("  Notes: %s\n", lead.Notes)
	}
	cmd.Printf("  Created: %s  Last activity: %s\n",
		lead.CreatedAt.Format("2006-01-02"), lead.LastActivity.Format("2006-01-02 15:04"))

	if len(lead.Interactions) > 0 {
		cmd.Println("\n  History:")
		for _, in := range lead.Interactions {
			cmd.Printf("    [%s] %s: %s\n", in.Timestamp.Format("2006-01-02"), in.Type, in.Content)
		}
	}
	if len(lead.Tasks) > 0 {
		cmd.Println("\n  Tasks:")
		for _, t := range lead.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			cmd.Printf("    [%s] %s (%s, %s, due %s) %s\n",
				mark, t.Title, t.Type, t.Priority, t.TargetDate.Format("2006-01-02"), t.ID)
		}
	}
	return nil
}

func runLeadUpdate(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	var patch domain.LeadPatch
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &leadName
	}
	if flags.Changed("company") {
		patch.Company = &leadCompany
	}
	if flags.Changed("email") {
		patch.Email = &leadEmail
	}
	if flags.Changed("phone") {
		patch.Phone = &leadPhone
	}
	if flags.Changed("linkedin") {
		patch.LinkedInURL = &leadLinkedIn
	}
	if flags.Changed("value") {
		if leadValue < 0 {
			return fmt.Errorf("%w: value must not be negative", domain.ErrInvalidInput)
		}
		patch.Value = &leadValue
	}
	if flags.Changed("stage") {
		stage := domain.Stage(leadStage)
		if !stage.IsValid() {
			return fmt.Errorf("%w: unknown stage %q", domain.ErrInvalidInput, leadStage)
		}
		patch.Stage = &stage
	}
	if flags.Changed("source") {
		source := domain.LeadSource(leadSource)
		if !source.IsValid() {
			return fmt.Errorf("%w: unknown source %q", domain.ErrInvalidInput, leadSource)
		}
		patch.Source = &source
	}
	if flags.Changed("notes") {
		patch.Notes = &leadNotes
	}

	if err := crmService.UpdateLead(context.Background(), args[0], patch); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}
	cmd.Printf("Updated lead %s\n", args[0])
	return nil
}

func runLeadDelete(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	if err := crmService.DeleteLead(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	cmd.Printf("Deleted lead %s\n", args[0])
	return nil
}
