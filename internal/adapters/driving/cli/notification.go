package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var notificationCmd = &cobra.Command{
	Use:     "notification",
	Aliases: []string{"notif"},
	Short:   "View notifications",
}

var notificationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications, newest first",
	Args:  cobra.NoArgs,
	RunE:  runNotificationList,
}

var notificationReadCmd = &cobra.Command{
	Use:   "read [notification-id]",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationRead,
}

var notificationUnreadOnly bool

func init() {
	notificationListCmd.Flags().BoolVar(&notificationUnreadOnly, "unread", false, "Only show unread notifications")

	notificationCmd.AddCommand(notificationListCmd)
	notificationCmd.AddCommand(notificationReadCmd)
	rootCmd.AddCommand(notificationCmd)
}

func runNotificationList(cmd *cobra.Command, _ []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	state := crmService.State()
	shown := 0
	for _, n := range state.Notifications {
		if notificationUnreadOnly && n.Read {
			continue
		}
		marker := " "
		if !n.Read {
			marker = "*"
		}
		cmd.Printf("%s %s  [%s] %s: %s\n", marker, n.ID, n.Type, n.Title, n.Message)
		shown++
	}
	if shown == 0 {
		cmd.Println("No notifications")
	}
	return nil
}

func runNotificationRead(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	if err := crmService.MarkNotificationRead(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	cmd.Printf("Marked %s as read\n", args[0])
	return nil
}
