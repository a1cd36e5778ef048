package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case StatusUpdateMsg:
		return m.handleStatusUpdate(msg)
	case WorkflowDoneMsg:
		m.done = true
		m.snap = m.manager.Snapshot()
		return m, nil
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		// Cancellation is silent abandonment: stop polling, no extra updates.
		m.cancel()
		return m, tea.Quit
	case "a", "A":
		if !m.started {
			m.started = true
			return m, startWorkflow(m.ctx, m.controller, m.videoPath)
		}
	}
	return m, nil
}

// handleStatusUpdate applies one controller update to the view
func (m Model) handleStatusUpdate(msg StatusUpdateMsg) (tea.Model, tea.Cmd) {
	m.snap = msg.Snapshot
	if msg.Update.State.Terminal() {
		// The controller stops after a terminal update; stop waiting too.
		return m, nil
	}
	return m, waitForUpdate(m.updates, m.manager)
}
