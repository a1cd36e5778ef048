// Package viewmodel derives presentation-ready values from a completed
// analysis result. Every derivation is pure: the input result is never
// mutated and the same result always builds the same view model.
package viewmodel

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"vidsense/config"
	"vidsense/emotion"
	"vidsense/types"
)

// TaggedSegment is a transcript segment with its resolved emotion tag.
type TaggedSegment struct {
	Segment types.TranscriptSegment
	Tag     emotion.Tag
}

// TaggedLine is one scene dialogue line with its heuristic emotion tag.
type TaggedLine struct {
	Text string
	Tag  emotion.Tag
}

// SceneView is a combined scene with its dialogue tagged line by line.
type SceneView struct {
	Scene    types.CombinedScene
	Dialogue []TaggedLine
}

// ViewModel is the aggregated, time-aligned projection of one completed job.
type ViewModel struct {
	Dominant emotion.Tag
	Segments []TaggedSegment
	Scenes   []SceneView
	Captions []string
	Language string
}

// Build assembles the view model for a completed analysis result.
// A nil result yields an empty, all-neutral view model rather than a fault.
func Build(res *types.AnalysisResult) *ViewModel {
	if res == nil {
		return &ViewModel{Dominant: emotion.TagFor(emotion.LabelNeutral), Language: "unknown"}
	}

	return &ViewModel{
		Dominant: dominantEmotion(res),
		Segments: tagSegments(res),
		Scenes:   tagScenes(res.CombinedScenes),
		Captions: capCaptions(res.FrameCaptions),
		Language: resolveLanguage(res),
	}
}

// dominantEmotion picks the majority label across the merged emotion
// sequence. Ties break toward the label seen first; with no usable labels
// the whole transcript text is classified heuristically instead.
func dominantEmotion(res *types.AnalysisResult) emotion.Tag {
	counts := make(map[string]int)
	var order []string

	for _, m := range res.MergedTextEmotions {
		label := strings.ToLower(strings.TrimSpace(m.Emotion))
		if label == "" {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	if len(order) == 0 {
		return emotion.Classify(res.TranscriptText)
	}

	best := order[0]
	for _, label := range order {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return emotion.ClassifyLabel(best)
}

// tagSegments aligns transcript segments with merged emotions by position.
// A segment past the end of the emotion sequence, or one whose entry has no
// label, falls back to classifying its own text.
func tagSegments(res *types.AnalysisResult) []TaggedSegment {
	if len(res.TranscriptSegments) == 0 {
		return nil
	}

	out := make([]TaggedSegment, 0, len(res.TranscriptSegments))
	for i, seg := range res.TranscriptSegments {
		tag := emotion.Classify(seg.Text)
		if i < len(res.MergedTextEmotions) && res.MergedTextEmotions[i].Emotion != "" {
			tag = emotion.ClassifyLabel(res.MergedTextEmotions[i].Emotion)
		}
		out = append(out, TaggedSegment{Segment: seg, Tag: tag})
	}
	return out
}

// tagScenes tags every dialogue line independently. Scene dialogue never
// carries a remote emotion signal, so the heuristic is always used here.
func tagScenes(scenes []types.CombinedScene) []SceneView {
	if len(scenes) == 0 {
		return nil
	}

	out := make([]SceneView, 0, len(scenes))
	for _, sc := range scenes {
		view := SceneView{Scene: sc}
		for _, line := range sc.Dialogue {
			view.Dialogue = append(view.Dialogue, TaggedLine{
				Text: line,
				Tag:  emotion.Classify(line),
			})
		}
		out = append(out, view)
	}
	return out
}

// capCaptions keeps the first MaxDisplayCaptions captions for display. The
// underlying result keeps the full list.
func capCaptions(captions []string) []string {
	if len(captions) == 0 {
		return nil
	}
	n := len(captions)
	if n > config.MaxDisplayCaptions {
		n = config.MaxDisplayCaptions
	}
	out := make([]string, n)
	copy(out, captions[:n])
	return out
}

// resolveLanguage prefers the language the pipeline reported and falls back
// to detecting it from the transcript text.
func resolveLanguage(res *types.AnalysisResult) string {
	if lang := strings.TrimSpace(res.Language); lang != "" {
		return lang
	}
	text := strings.TrimSpace(res.TranscriptText)
	if text == "" {
		return "unknown"
	}
	if iso := whatlanggo.DetectLang(text).Iso6391(); iso != "" {
		return iso
	}
	return "unknown"
}
