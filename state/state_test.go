package state

import (
	"testing"

	"vidsense/poller"
	"vidsense/types"
)

func TestManagerAppliesUpdates(t *testing.T) {
	m := NewManager()
	m.SetVideoPath("clip.mp4")

	m.Apply(poller.Update{State: poller.StateUploading})
	m.Apply(poller.Update{
		State:    poller.StateProcessing,
		Job:      &types.AnalysisJob{ID: "job-1", Status: types.JobProcessing},
		Progress: types.Progress{Percent: 40, Step: "extracting frames"},
	})

	snap := m.Snapshot()
	if snap.State != poller.StateProcessing {
		t.Fatalf("state = %q", snap.State)
	}
	if snap.Job == nil || snap.Job.ID != "job-1" {
		t.Fatalf("job = %+v", snap.Job)
	}
	if snap.Progress.Percent != 40 {
		t.Fatalf("progress = %+v", snap.Progress)
	}
	if snap.View != nil {
		t.Fatalf("view model built before completion")
	}
	if len(snap.Logs) == 0 {
		t.Fatalf("no activity logged")
	}
}

func TestManagerBuildsViewOnCompletion(t *testing.T) {
	m := NewManager()

	job := &types.AnalysisJob{
		ID:     "job-1",
		Status: types.JobCompleted,
		Result: &types.AnalysisResult{
			TranscriptText: "such a happy ending",
			Language:       "en",
		},
	}
	m.Apply(poller.Update{State: poller.StateCompleted, Job: job})

	snap := m.Snapshot()
	if snap.View == nil {
		t.Fatalf("view model not built on completion")
	}
	if snap.View.Language != "en" {
		t.Fatalf("view language = %q", snap.View.Language)
	}
}

func TestManagerResetOnNewVideo(t *testing.T) {
	m := NewManager()
	m.Apply(poller.Update{
		State: poller.StateCompleted,
		Job:   &types.AnalysisJob{ID: "job-1", Status: types.JobCompleted, Result: &types.AnalysisResult{}},
	})

	m.SetVideoPath("other.mp4")
	snap := m.Snapshot()
	if snap.State != poller.StateIdle || snap.Job != nil || snap.View != nil {
		t.Fatalf("session not reset: %+v", snap)
	}
	if snap.VideoPath != "other.mp4" {
		t.Fatalf("video path = %q", snap.VideoPath)
	}
}

func TestSnapshotLogsAreCopies(t *testing.T) {
	m := NewManager()
	m.AddLog("first")

	snap := m.Snapshot()
	snap.Logs[0].Message = "mutated"

	if got := m.Snapshot().Logs[0].Message; got != "first" {
		t.Fatalf("snapshot shares log storage: %q", got)
	}
}
