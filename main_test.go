package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCLI isolates the globals the CLI commands mutate and returns a
// command shell whose output is captured
func setupCLI(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	originalStore := reportStoreInstance
	originalPlanner := plannerInstance
	t.Cleanup(func() {
		reportStoreInstance = originalStore
		plannerInstance = originalPlanner
	})
	plannerInstance = newTestPlanner(1)

	t.Setenv(EnvReportDir, t.TempDir())

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd, out
}

// --- CLI Structure Tests ---

func TestNewRootCommand(t *testing.T) {
	root := newRootCommand()

	assert.Equal(t, "channel-planner", root.Use)

	names := make([]string, 0, 3)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "plan")
	assert.Contains(t, names, "visualize")
}

func TestNewRootCommand_PlanFlags(t *testing.T) {
	root := newRootCommand()

	plan, _, err := root.Find([]string{"plan"})
	require.NoError(t, err)
	assert.NotNil(t, plan.Flags().Lookup("scenario"))
	assert.NotNil(t, plan.Flags().Lookup("band"))

	visualize, _, err := root.Find([]string{"visualize"})
	require.NoError(t, err)
	assert.NotNil(t, visualize.Flags().Lookup("facility"))
}

// --- Plan Command Tests ---

func TestRunPlan_DefaultScenario(t *testing.T) {
	cmd, out := setupCLI(t)

	require.NoError(t, runPlan(cmd, "", ""))

	text := out.String()
	assert.Contains(t, text, "Analyzing wireless requirements for FC-EXAMPLE-01...")
	assert.Contains(t, text, "WIRELESS CHANNEL OPTIMIZATION REPORT")
	assert.Contains(t, text, "Recommended APs: 54")
	assert.Contains(t, text, "Full report saved to:")

	// The report lands on disk for the visualizer.
	_, err := reportStoreInstance.Load("FC-EXAMPLE-01")
	assert.NoError(t, err)
}

func TestRunPlan_ScenarioFile(t *testing.T) {
	cmd, out := setupCLI(t)

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mockScenarioYAML), 0o644))

	require.NoError(t, runPlan(cmd, path, ""))

	assert.Contains(t, out.String(), "Analyzing wireless requirements for North Warehouse 2...")

	_, err := reportStoreInstance.Load("North Warehouse 2")
	assert.NoError(t, err)
}

func TestRunPlan_BandOverride(t *testing.T) {
	cmd, out := setupCLI(t)

	require.NoError(t, runPlan(cmd, "", Band2_4GHz))

	report, err := reportStoreInstance.Load("FC-EXAMPLE-01")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 11}, report.ChannelPlanSummary.ChannelsUsed)
	assert.NotEmpty(t, out.String())
}

func TestRunPlan_MissingScenarioFile(t *testing.T) {
	cmd, _ := setupCLI(t)

	err := runPlan(cmd, filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestRunPlan_InvalidBandOverride(t *testing.T) {
	cmd, _ := setupCLI(t)

	err := runPlan(cmd, "", "6GHz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrInvalidBand)
}

// --- Visualize Command Tests ---

func TestRunVisualize(t *testing.T) {
	cmd, out := setupCLI(t)

	require.NoError(t, runPlan(cmd, "", ""))
	out.Reset()

	require.NoError(t, runVisualize(cmd, "FC-EXAMPLE-01"))

	text := out.String()
	assert.Contains(t, text, "CHANNEL ASSIGNMENT VISUALIZATION")
	assert.Contains(t, text, "Grid Size: 6 x 9 APs")
}

func TestRunVisualize_NoReport(t *testing.T) {
	cmd, out := setupCLI(t)

	// A missing report is a message for the operator, not a failure.
	require.NoError(t, runVisualize(cmd, "never-planned"))
	assert.Contains(t, out.String(), MsgRunOptimizerFirst)
}
