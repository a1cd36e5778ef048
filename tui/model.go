package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vidsense/poller"
	"vidsense/state"
)

// Model represents the TUI client state. All analysis state lives in the
// session manager; the model keeps only its latest snapshot plus UI flags.
type Model struct {
	controller *poller.Controller
	manager    *state.Manager
	updates    chan poller.Update
	videoPath  string

	snap    state.Snapshot
	started bool
	done    bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new TUI model. The updates channel must be the one the
// controller's observer writes to.
func NewModel(ctrl *poller.Controller, manager *state.Manager, updates chan poller.Update, videoPath string) Model {
	ctx, cancel := context.WithCancel(context.Background())
	manager.SetVideoPath(videoPath)
	return Model{
		controller: ctrl,
		manager:    manager,
		updates:    updates,
		videoPath:  videoPath,
		snap:       manager.Snapshot(),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.updates, m.manager)
}
