package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/nexus-crm/internal/core/domain"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Manage the local file mirror",
	Long: `The mirror keeps a plain JSON copy of your CRM in a file you
choose. It trails the database: a failed mirror write never blocks or
rolls back a change.`,
}

var mirrorConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Attach a mirror file",
	Long: `Attach a JSON file as the mirror. If the file already has content,
its content replaces the current CRM state wholesale. A missing or
empty file is seeded from the current state.`,
	Args: cobra.NoArgs,
	RunE: runMirrorConnect,
}

var mirrorStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mirror attach and sync state",
	Args:  cobra.NoArgs,
	RunE:  runMirrorStatus,
}

var mirrorDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Detach the mirror file",
	Args:  cobra.NoArgs,
	RunE:  runMirrorDisconnect,
}

var mirrorFile string

func init() {
	mirrorConnectCmd.Flags().StringVar(&mirrorFile, "file", "", "Path of the JSON file to mirror to")
	_ = mirrorConnectCmd.MarkFlagRequired("file")

	mirrorCmd.AddCommand(mirrorConnectCmd)
	mirrorCmd.AddCommand(mirrorStatusCmd)
	mirrorCmd.AddCommand(mirrorDisconnectCmd)
	rootCmd.AddCommand(mirrorCmd)
}

func runMirrorConnect(cmd *cobra.Command, _ []string) error {
	if mirrorService == nil {
		return errors.New("mirror service not configured")
	}

	if mirrorPicker != nil {
		mirrorPicker.SetPath(mirrorFile)
	}

	if err := mirrorService.Connect(context.Background()); err != nil {
		if errors.Is(err, domain.ErrAborted) {
			cmd.Println("Connect cancelled")
			return nil
		}
		return fmt.Errorf("failed to connect mirror: %w", err)
	}

	status := mirrorService.Status()
	cmd.Printf("Mirroring to %s\n", status.FileName)
	return nil
}

func runMirrorStatus(cmd *cobra.Command, _ []string) error {
	if mirrorService == nil {
		return errors.New("mirror service not configured")
	}

	status := mirrorService.Status()
	if !status.Attached {
		cmd.Println("Mirror: not attached")
		return nil
	}

	sync := "in sync"
	if !status.Synced {
		sync = "out of sync"
	}
	cmd.Printf("Mirror: %s (%s)\n", status.FileName, sync)
	return nil
}

func runMirrorDisconnect(cmd *cobra.Command, _ []string) error {
	if mirrorService == nil {
		return errors.New("mirror service not configured")
	}

	if err := mirrorService.Disconnect(); err != nil {
		return fmt.Errorf("failed to disconnect mirror: %w", err)
	}
	cmd.Println("Mirror disconnected")
	return nil
}
