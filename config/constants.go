package config

import "time"

// Polling Constants
const (
	// DefaultPollInterval is the fixed delay between status requests.
	DefaultPollInterval = 1500 * time.Millisecond

	// DefaultJobDeadline bounds how long a job may stay non-terminal before
	// the client gives up and synthesizes a timed-out state.
	DefaultJobDeadline = 30 * time.Minute
)

// Display Constants
const (
	// MaxDisplayCaptions caps how many frame captions the view model keeps.
	MaxDisplayCaptions = 12

	// MaxSegmentPreview is the character budget for a transcript line in the UI.
	MaxSegmentPreview = 80
)

// Transport Constants
const (
	// UploadFieldName is the multipart form field the service reads the video from.
	UploadFieldName = "video_file"

	// RequestTimeout applies to the JSON round trips (start, status).
	RequestTimeout = 30 * time.Second

	// UploadTimeout applies to the multipart upload, which can carry large files.
	UploadTimeout = 10 * time.Minute
)
