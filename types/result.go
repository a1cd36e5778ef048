package types

// TranscriptSegment is one spoken line with its time window in seconds.
// Segments are ordered by Start; overlap is assumed absent but not enforced.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// MergedTextEmotion pairs a transcript sentence with the emotion signal the
// pipeline sampled near it. The sequence is index-aligned with the transcript
// segments; correlation is by position, not by timestamp.
type MergedTextEmotion struct {
	Time    *float64 `json:"time,omitempty"`
	Text    string   `json:"text"`
	Emotion string   `json:"emotion,omitempty"`
}

// Scene is a raw group of visually similar frame captions.
type Scene struct {
	Captions  []string `json:"captions"`
	StartTime float64  `json:"start_time"`
	EndTime   float64  `json:"end_time"`
}

// CombinedScene is a visually coherent interval with the transcript lines
// that fall inside its window, as resolved by the remote pipeline.
type CombinedScene struct {
	StartTime   float64  `json:"start_time"`
	EndTime     float64  `json:"end_time"`
	Description string   `json:"description,omitempty"`
	Dialogue    []string `json:"dialogue"`
}

// AnalysisResult is the full payload of a completed analysis job.
// Every field except TranscriptText may be empty or missing.
type AnalysisResult struct {
	TranscriptText     string              `json:"transcript_text"`
	TranscriptSegments []TranscriptSegment `json:"transcript_segments"`
	FrameCaptions      []string            `json:"frame_captions"`
	Scenes             []Scene             `json:"scenes"`
	CombinedScenes     []CombinedScene     `json:"combined_scenes"`
	MergedTextEmotions []MergedTextEmotion `json:"merged_text_emotions,omitempty"`
	Language           string              `json:"language"`
}
