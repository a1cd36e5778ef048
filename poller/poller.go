// Package poller drives a single video analysis job from upload to a
// terminal state, polling the remote service at a fixed cadence.
package poller

import (
	"context"
	"log"
	"time"

	"vidsense/config"
	"vidsense/types"
)

// State is the client-side lifecycle of one analysis workflow. It extends
// the remote job statuses with the local submission phases and the
// client-synthesized timed-out state.
type State string

const (
	StateIdle       State = "idle"
	StateUploading  State = "uploading"
	StateStarting   State = "starting"
	StatePending    State = "pending"
	StateProcessing State = "processing"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateTimedOut   State = "timed_out"
)

// Terminal reports whether the workflow is finished in this state.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateTimedOut
}

// Update is one observer notification. Job is the latest applied snapshot
// (nil during the submission phases), Err is set on Failed and TimedOut.
type Update struct {
	State    State
	Job      *types.AnalysisJob
	Progress types.Progress
	Err      error
}

// AnalysisAPI is the slice of the analysis client the controller needs.
type AnalysisAPI interface {
	UploadVideo(ctx context.Context, path string) (*types.UploadResponse, error)
	StartAnalysis(ctx context.Context, filename string) (string, error)
	GetStatus(ctx context.Context, jobID string) (*types.AnalysisJob, error)
}

// Controller runs the polling state machine for one job at a time.
//
// The loop is single-flight: a tick fetches, the fetch is awaited, the
// snapshot is applied, and only then is the next tick scheduled. There is
// never more than one status request outstanding.
type Controller struct {
	api      AnalysisAPI
	observer func(Update)
	interval time.Duration
	deadline time.Duration
}

// NewController creates a controller. The observer may be nil; when set it
// is called at most once per tick, and terminal states fire exactly once.
func NewController(api AnalysisAPI, cfg config.Config, observer func(Update)) *Controller {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	deadline := cfg.JobDeadline
	if deadline <= 0 {
		deadline = config.DefaultJobDeadline
	}
	return &Controller{
		api:      api,
		observer: observer,
		interval: interval,
		deadline: deadline,
	}
}

// Run drives one analysis job from upload to a terminal state and returns
// the terminal update. Cancelling ctx abandons the job silently: Run
// returns ctx.Err() and the observer receives no further calls.
func (c *Controller) Run(ctx context.Context, videoPath string) (*Update, error) {
	deadline := time.NewTimer(c.deadline)
	defer deadline.Stop()

	c.notify(Update{State: StateUploading})
	uploaded, err := c.api.UploadVideo(ctx, videoPath)
	if err != nil {
		return c.fail(ctx, nil, err)
	}

	c.notify(Update{State: StateStarting})
	jobID, err := c.api.StartAnalysis(ctx, uploaded.Filename)
	if err != nil {
		return c.fail(ctx, nil, err)
	}

	return c.poll(ctx, jobID, deadline)
}

// poll loops tick -> fetch -> apply -> schedule, until a terminal state,
// the deadline, or cancellation.
func (c *Controller) poll(ctx context.Context, jobID string, deadline *time.Timer) (*Update, error) {
	var slot snapshotSlot
	var seq uint64

	for {
		wait := time.NewTimer(c.interval)
		select {
		case <-ctx.Done():
			wait.Stop()
			return nil, ctx.Err()
		case <-deadline.C:
			wait.Stop()
			err := &types.TimeoutExceeded{JobID: jobID, Limit: c.deadline}
			u := Update{State: StateTimedOut, Err: err}
			c.notify(u)
			return &u, err
		case <-wait.C:
		}

		seq++
		job, err := c.api.GetStatus(ctx, jobID)
		if err != nil {
			return c.fail(ctx, nil, err)
		}

		// A response older than the last applied snapshot, or one arriving
		// after a terminal snapshot, must never win.
		if !slot.apply(seq, job) {
			continue
		}

		switch job.Status {
		case types.JobPending:
			c.notify(Update{
				State:    StatePending,
				Job:      job,
				Progress: types.Progress{Percent: 0, Step: "queued"},
			})
		case types.JobProcessing:
			c.notify(Update{
				State:    StateProcessing,
				Job:      job,
				Progress: normalizeProgress(job.Progress),
			})
		case types.JobCompleted:
			u := Update{
				State:    StateCompleted,
				Job:      job,
				Progress: types.Progress{Percent: 100, Step: "complete"},
			}
			c.notify(u)
			return &u, nil
		case types.JobFailed:
			return c.fail(ctx, job, &types.RemoteJobFailure{JobID: jobID, Message: job.Error})
		default:
			// The service sent a status we do not know. Keep the job alive as
			// generic low-progress work so the caller stays informed, but log
			// it: a new status here usually means the protocol changed.
			log.Printf("⚠️ unknown status %q for job %s, treating as processing", job.Status, jobID)
			c.notify(Update{
				State:    StateProcessing,
				Job:      job,
				Progress: types.Progress{Percent: 5, Step: string(job.Status)},
			})
		}
	}
}

// fail emits the single terminal failure update, unless the workflow was
// cancelled, in which case it stays silent.
func (c *Controller) fail(ctx context.Context, job *types.AnalysisJob, err error) (*Update, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	u := Update{State: StateFailed, Job: job, Err: err}
	c.notify(u)
	return &u, err
}

func (c *Controller) notify(u Update) {
	if c.observer != nil {
		c.observer(u)
	}
}

// normalizeProgress fills the defaults for a processing response whose
// progress block is missing or partial.
func normalizeProgress(p *types.Progress) types.Progress {
	if p == nil {
		return types.Progress{Percent: 0, Step: "processing"}
	}
	out := *p
	if out.Step == "" {
		out.Step = "processing"
	}
	return out
}
