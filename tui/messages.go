package tui

import (
	"vidsense/poller"
	"vidsense/state"
)

// Messages for the tea program (observer-driven)

// StatusUpdateMsg carries one controller update plus the session snapshot
// taken right after it was applied.
type StatusUpdateMsg struct {
	Update   poller.Update
	Snapshot state.Snapshot
}

// WorkflowDoneMsg is sent when the controller run returns.
type WorkflowDoneMsg struct {
	Err error
}
