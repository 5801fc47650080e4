package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Task Command Tests

func TestTaskCmd_Use(t *testing.T) {
	assert.Equal(t, "task", taskCmd.Use)
}

func TestTaskAddCmd_RequiresTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"task", "add", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestTaskAddCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"task", "add", "1", "Send contract", "--priority", "High", "--due", "2026-04-01"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `Added task "Send contract" to lead 1`)

	tasks := crmService.State().FindLead("1").Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "Send contract", tasks[0].Title)
}

func TestTaskToggleCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"task", "add", "1", "Call back"})
	require.NoError(t, rootCmd.Execute())

	taskID := crmService.State().FindLead("1").Tasks[0].ID

	rootCmd.SetArgs([]string{"task", "toggle", "1", taskID})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	assert.True(t, crmService.State().FindLead("1").Tasks[0].Completed)
}

func TestTaskPendingCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"task", "add", "1", "Prepare demo", "--priority", "High"})
	require.NoError(t, rootCmd.Execute())

	buf.Reset()
	rootCmd.SetArgs([]string{"task", "pending"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "[High] Prepare demo for Sarah Connor")
	assert.Contains(t, buf.String(), "Total: 1 pending tasks")
}

func TestTaskPendingCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"task", "pending"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No pending tasks")
}
