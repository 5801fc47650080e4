package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage local profiles",
	Long: `Profiles are a session switch only: whoever is selected owns new
activity, but every profile sees all leads.`,
}

var userAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE:  runUserList,
}

var userSelectCmd = &cobra.Command{
	Use:   "select [user-id]",
	Short: "Make a profile current",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserSelect,
}

var userLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current profile",
	Args:  cobra.NoArgs,
	RunE:  runUserLogout,
}

// userRole is a flag for the add command.
var userRole string

func init() {
	userAddCmd.Flags().StringVar(&userRole, "role", "", "Job role")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userSelectCmd)
	userCmd.AddCommand(userLogoutCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	user, err := crmService.AddUser(context.Background(), args[0], userRole)
	if err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}
	cmd.Printf("Added user %s (%s)\n", user.Name, user.ID)
	return nil
}

func runUserList(cmd *cobra.Command, _ []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	state := crmService.State()
	if len(state.Users) == 0 {
		cmd.Println("No users")
		return nil
	}

	for _, u := range state.Users {
		marker := " "
		if state.CurrentUser != nil && state.CurrentUser.ID == u.ID {
			marker = "*"
		}
		cmd.Printf("%s %s  %s", marker, u.ID, u.Name)
		if u.Role != "" {
			cmd.Printf(" (%s)", u.Role)
		}
		cmd.Println()
	}
	return nil
}

func runUserSelect(cmd *cobra.Command, args []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	if err := crmService.SelectUser(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to select user: %w", err)
	}
	cmd.Printf("Current user is now %s\n", args[0])
	return nil
}

func runUserLogout(cmd *cobra.Command, _ []string) error {
	if crmService == nil {
		return errors.New("crm service not configured")
	}

	if err := crmService.Logout(context.Background()); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	cmd.Println("Logged out")
	return nil
}
