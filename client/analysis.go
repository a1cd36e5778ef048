package client

import (
	"context"
	"net/http"
	"strings"

	"vidsense/types"
)

// StartAnalysis asks the service to queue an analysis job for a previously
// uploaded file and returns the opaque job id.
func (c *AnalysisClient) StartAnalysis(ctx context.Context, filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", &types.InvalidArgumentError{Reason: "video filename is required"}
	}

	payload := map[string]string{"video_filename": filename}
	var out types.StartResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/analyze-video/", payload, &out); err != nil {
		return "", err
	}
	return out.JobID, nil
}

// GetStatus fetches the current snapshot of a job. The returned job is a
// complete replacement value; callers never patch an earlier snapshot.
func (c *AnalysisClient) GetStatus(ctx context.Context, jobID string) (*types.AnalysisJob, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, &types.InvalidArgumentError{Reason: "job id is required"}
	}

	var raw types.StatusResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, "/analysis/"+jobID, nil, &raw); err != nil {
		return nil, err
	}

	return &types.AnalysisJob{
		ID:       jobID,
		Status:   types.JobStatus(raw.Status),
		Progress: raw.Progress,
		Result:   raw.Result,
		Error:    raw.Error,
	}, nil
}
