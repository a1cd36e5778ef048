package devserver

import (
	"strings"
	"time"

	"vidsense/types"
)

// stage is one progress step of the simulated pipeline. The percents and
// labels match the stages the real analysis worker reports.
type stage struct {
	percent float64
	step    string
}

var pipelineStages = []stage{
	{5, "starting analysis"},
	{20, "transcribing audio"},
	{40, "extracting frames"},
	{60, "captioning frames"},
	{70, "grouping scenes"},
	{80, "attaching dialogue"},
	{90, "analyzing emotions"},
	{100, "finalizing"},
}

// runPipeline walks a job through the simulated stages and stores a canned
// result. It runs in its own goroutine per job.
func (s *Server) runPipeline(jobID, filename string) {
	for _, st := range pipelineStages {
		time.Sleep(s.stepDelay)
		s.store.setProgress(jobID, st.percent, st.step)
	}
	s.store.complete(jobID, cannedResult(filename))
}

// cannedResult builds a small deterministic analysis result so the client
// side can be exercised end to end without the ML pipeline.
func cannedResult(filename string) *types.AnalysisResult {
	segments := []types.TranscriptSegment{
		{Start: 0.0, End: 3.2, Text: "Welcome back, I am so happy to see you again."},
		{Start: 3.2, End: 7.5, Text: "I heard the news yesterday and it made me really sad."},
		{Start: 7.5, End: 11.0, Text: "Wow, I did not expect that ending at all."},
	}

	var text strings.Builder
	for _, seg := range segments {
		text.WriteString(seg.Text)
		text.WriteString(" ")
	}

	captions := []string{
		"a person standing in a living room",
		"a person sitting on a couch",
		"two people talking at a table",
		"a close up of a face",
		"a person walking through a doorway",
	}

	t0, t1, t2 := 0.0, 4.0, 8.0
	return &types.AnalysisResult{
		TranscriptText:     strings.TrimSpace(text.String()),
		TranscriptSegments: segments,
		FrameCaptions:      captions,
		Scenes: []types.Scene{
			{Captions: captions[:3], StartTime: 0, EndTime: 6},
			{Captions: captions[3:], StartTime: 6, EndTime: 11},
		},
		CombinedScenes: []types.CombinedScene{
			{
				StartTime:   0,
				EndTime:     6,
				Description: "a person standing in a living room",
				Dialogue:    []string{segments[0].Text, segments[1].Text},
			},
			{
				StartTime:   6,
				EndTime:     11,
				Description: "a close up of a face",
				Dialogue:    []string{segments[2].Text},
			},
		},
		MergedTextEmotions: []types.MergedTextEmotion{
			{Time: &t0, Text: segments[0].Text, Emotion: "happy"},
			{Time: &t1, Text: segments[1].Text, Emotion: "sad"},
			{Time: &t2, Text: segments[2].Text, Emotion: "surprise"},
		},
		Language: "en",
	}
}
