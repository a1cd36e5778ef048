package types

// JobStatus is the lifecycle status reported by the analysis service.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether the service will never change this status again.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// Progress describes how far the remote pipeline has gotten with a job.
type Progress struct {
	Percent float64 `json:"percent"`
	Step    string  `json:"step"`
}

// AnalysisJob is one snapshot of a remote analysis job.
//
// A snapshot is immutable once built: each poll replaces the previous
// snapshot wholesale, it is never patched in place. Result is set only
// when Status is JobCompleted; Error only when Status is JobFailed.
type AnalysisJob struct {
	ID       string          `json:"id"`
	Status   JobStatus       `json:"status"`
	Progress *Progress       `json:"progress,omitempty"`
	Result   *AnalysisResult `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// UploadResponse is the service reply to a successful video upload.
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// StartResponse is the service reply when an analysis job is queued.
type StartResponse struct {
	JobID string `json:"job_id"`
}

// StatusResponse is the tagged union returned by GET /analysis/{job_id}.
// Exactly one of Progress, Result or Error is meaningful, selected by Status.
type StatusResponse struct {
	Status   string          `json:"status"`
	Progress *Progress       `json:"progress,omitempty"`
	Result   *AnalysisResult `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}
