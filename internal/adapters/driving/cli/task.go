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

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks on leads",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [lead-id] [title]",
	Short: "Add a task to a lead",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskAdd,
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle [lead-id] [task-id]",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskToggle,
}

var taskPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List incomplete tasks across all leads",
	Long:  `Lists every incomplete task, high priority first, then by due date.`,
	Args:  cobra.NoArgs,
	RunE:  runTaskPending,
}

// Flags for task add.
var (
	taskType     string
	taskPriority string
	taskDue      string
)

func init() {
	taskAddCmd.Flags().StringVar(&taskType, "type", "Follow-up", "Task type")
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", "Medium", "Task priority (High, Medium, Low)")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Target date (2006-01-02), defaults to tomorrow")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskToggleCmd)
	taskCmd.AddCommand(taskPendingCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	title := strings.TrimSpace(args[1])
	if title == "" {
		return fmt.Errorf("%w: task title must not be empty", domain.ErrInvalidInput)
	}

	err := crmService.AddTask(context.Background(), args[0], driving.NewTask{
		Title:      title,
		Type:       domain.TaskType(taskType),
		Priority:   domain.TaskPriority(taskPriority),
		TargetDate: taskDue,
	})
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	cmd.Printf("Added task %q to lead %s\n", title, args[0])
	return nil
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	if err := crmService.ToggleTask(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}
	cmd.Printf("Toggled task %s\n", args[1])
	return nil
}

func runTaskPending(cmd *cobra.Command, _ []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	state := crmService.State()
	pending := domain.PendingTasks(state.Leads)

	if len(pending) == 0 {
		cmd.Println("No pending tasks")
		return nil
	}

	for _, p := range pending {
		cmd.Printf("  [%s] %s for %s (due %s)\n",
			p.Task.Priority, p.Task.Title, p.LeadName, p.Task.TargetDate.Format("2006-01-02"))
	}
	cmd.Printf("Total: %d pending tasks\n", len(pending))
	return nil
}
