package devserver

import (
	"sync"

	"vidsense/types"
)

// jobStore keeps simulated jobs in memory. The real service persists jobs
// in its task backend; the dev server only needs them for its own lifetime.
type jobStore struct {
	mu   sync.RWMutex
	jobs map[string]types.StatusResponse
}

func newJobStore() *jobStore {
	return &jobStore{jobs: make(map[string]types.StatusResponse)}
}

// create registers a new job in the pending status.
func (s *jobStore) create(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = types.StatusResponse{Status: string(types.JobPending)}
}

// setProgress moves a job to processing with the given progress block.
func (s *jobStore) setProgress(id string, percent float64, step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = types.StatusResponse{
		Status:   string(types.JobProcessing),
		Progress: &types.Progress{Percent: percent, Step: step},
	}
}

// complete moves a job to the completed status with its result.
func (s *jobStore) complete(id string, result *types.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = types.StatusResponse{
		Status: string(types.JobCompleted),
		Result: result,
	}
}

// fail moves a job to the failed status with an error message.
func (s *jobStore) fail(id string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = types.StatusResponse{
		Status: string(types.JobFailed),
		Error:  message,
	}
}

// get returns the current snapshot of a job.
func (s *jobStore) get(id string) (types.StatusResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}
