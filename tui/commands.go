package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vidsense/poller"
	"vidsense/state"
)

// startWorkflow creates a command that runs the full analysis workflow.
// Incremental updates arrive separately through the updates channel; the
// returned message only marks the end of the run.
func startWorkflow(ctx context.Context, ctrl *poller.Controller, videoPath string) tea.Cmd {
	return func() tea.Msg {
		_, err := ctrl.Run(ctx, videoPath)
		return WorkflowDoneMsg{Err: err}
	}
}

// waitForUpdate creates a command that blocks for the next controller
// update. The handler re-issues it until a terminal update arrives.
func waitForUpdate(updates <-chan poller.Update, manager *state.Manager) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return StatusUpdateMsg{Update: u, Snapshot: manager.Snapshot()}
	}
}
