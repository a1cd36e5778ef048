package poller

import (
	"sync"

	"vidsense/types"
)

// snapshotSlot is the single shared job slot. It has exactly one writer
// (the polling loop) and replaces the whole snapshot atomically. Snapshots
// carry the sequence number of the request that produced them; anything
// older than the last applied snapshot is discarded, so a slow, reordered
// response can never overwrite a newer terminal state.
type snapshotSlot struct {
	mu       sync.Mutex
	lastSeq  uint64
	job      *types.AnalysisJob
	terminal bool
}

// apply installs a snapshot if it is newer than everything applied so far
// and no terminal snapshot has been applied yet. It reports whether the
// snapshot was installed.
func (s *snapshotSlot) apply(seq uint64, job *types.AnalysisJob) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminal || seq <= s.lastSeq {
		return false
	}
	s.lastSeq = seq
	s.job = job
	if job != nil && job.Status.Terminal() {
		s.terminal = true
	}
	return true
}

// latest returns the last applied snapshot.
func (s *snapshotSlot) latest() *types.AnalysisJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job
}
