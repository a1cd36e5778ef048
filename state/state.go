// Package state owns the mutable session state for one analysis workflow.
// The polling controller is the single writer (through Apply); the UI and
// anything else read consistent copies through Snapshot.
package state

import (
	"fmt"
	"sync"
	"time"

	"vidsense/poller"
	"vidsense/types"
	"vidsense/viewmodel"
)

// LogEntry represents a single log line with timestamp
type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// Snapshot is a consistent, copy-by-value view of the session.
type Snapshot struct {
	VideoPath string
	State     poller.State
	Job       *types.AnalysisJob
	Progress  types.Progress
	View      *viewmodel.ViewModel
	Err       error
	Logs      []LogEntry
}

// Manager holds the session state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	videoPath string
	current   poller.State
	job       *types.AnalysisJob
	progress  types.Progress
	view      *viewmodel.ViewModel
	lastErr   error

	// Logs (ring buffer)
	logs    []LogEntry
	maxLogs int
}

// NewManager creates a new session state manager
func NewManager() *Manager {
	return &Manager{
		current: poller.StateIdle,
		logs:    make([]LogEntry, 0),
		maxLogs: 50, // Keep last 50 log entries
	}
}

// SetVideoPath records the selected file and resets the session for a new job.
func (m *Manager) SetVideoPath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videoPath = path
	m.current = poller.StateIdle
	m.job = nil
	m.progress = types.Progress{}
	m.view = nil
	m.lastErr = nil
}

// Apply is the single update entry point for a running job. It replaces the
// job snapshot wholesale and, on completion, builds the view model once.
func (m *Manager) Apply(u poller.Update) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = u.State
	m.progress = u.Progress
	m.lastErr = u.Err
	if u.Job != nil {
		m.job = u.Job
	}

	switch u.State {
	case poller.StateUploading:
		m.addLogLocked("Uploading video...")
	case poller.StateStarting:
		m.addLogLocked("Starting analysis job...")
	case poller.StatePending:
		m.addLogLocked("Job queued")
	case poller.StateProcessing:
		m.addLogLocked(fmt.Sprintf("%s (%.0f%%)", u.Progress.Step, u.Progress.Percent))
	case poller.StateCompleted:
		if u.Job != nil {
			m.view = viewmodel.Build(u.Job.Result)
		}
		m.addLogLocked("Analysis complete")
	case poller.StateFailed:
		m.addLogLocked(fmt.Sprintf("Analysis failed: %v", u.Err))
	case poller.StateTimedOut:
		m.addLogLocked("Analysis timed out")
	}
}

// Snapshot returns a copy of the current session state (thread-safe)
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		VideoPath: m.videoPath,
		State:     m.current,
		Job:       m.job,
		Progress:  m.progress,
		View:      m.view,
		Err:       m.lastErr,
		Logs:      append([]LogEntry{}, m.logs...), // Copy slice
	}
}

// State gets the current workflow state (thread-safe)
func (m *Manager) State() poller.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AddLog adds a log entry (thread-safe)
func (m *Manager) AddLog(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addLogLocked(message)
}

// addLogLocked appends to the ring buffer (must hold lock)
func (m *Manager) addLogLocked(message string) {
	m.logs = append(m.logs, LogEntry{Timestamp: time.Now(), Message: message})
	if len(m.logs) > m.maxLogs {
		m.logs = m.logs[len(m.logs)-m.maxLogs:]
	}
}
