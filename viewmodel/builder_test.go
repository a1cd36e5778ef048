package viewmodel

import (
	"testing"

	"vidsense/config"
	"vidsense/emotion"
	"vidsense/types"
)

func TestDominantEmotionMajority(t *testing.T) {
	res := &types.AnalysisResult{
		MergedTextEmotions: []types.MergedTextEmotion{
			{Text: "a", Emotion: "happy"},
			{Text: "b", Emotion: "sad"},
			{Text: "c", Emotion: "happy"},
		},
	}

	view := Build(res)
	if view.Dominant.Label != emotion.LabelHappy {
		t.Fatalf("dominant = %q; want %q", view.Dominant.Label, emotion.LabelHappy)
	}
}

func TestDominantEmotionTieKeepsFirstSeen(t *testing.T) {
	res := &types.AnalysisResult{
		MergedTextEmotions: []types.MergedTextEmotion{
			{Text: "a", Emotion: "sad"},
			{Text: "b", Emotion: "happy"},
			{Text: "c", Emotion: "sad"},
			{Text: "d", Emotion: "happy"},
		},
	}

	view := Build(res)
	if view.Dominant.Label != emotion.LabelSadAngry {
		t.Fatalf("dominant = %q; want %q (first-seen label wins ties)", view.Dominant.Label, emotion.LabelSadAngry)
	}
}

func TestDominantEmotionFallsBackToTranscript(t *testing.T) {
	res := &types.AnalysisResult{
		TranscriptText: "I am so sad and angry about this",
	}

	view := Build(res)
	if view.Dominant.Label != emotion.LabelSadAngry {
		t.Fatalf("dominant = %q; want %q via heuristic fallback", view.Dominant.Label, emotion.LabelSadAngry)
	}
}

func TestSegmentTaggingPositionalFallback(t *testing.T) {
	// Three segments, only two merged emotion entries: the third segment
	// must be classified from its own text, not fault or misalign.
	res := &types.AnalysisResult{
		TranscriptSegments: []types.TranscriptSegment{
			{Start: 0, End: 1, Text: "plain first line"},
			{Start: 1, End: 2, Text: "plain second line"},
			{Start: 2, End: 3, Text: "I am so sad and angry"},
		},
		MergedTextEmotions: []types.MergedTextEmotion{
			{Text: "plain first line", Emotion: "happy"},
			{Text: "plain second line", Emotion: "surprise"},
		},
	}

	view := Build(res)
	if len(view.Segments) != 3 {
		t.Fatalf("got %d tagged segments; want 3", len(view.Segments))
	}

	wants := []emotion.Label{emotion.LabelHappy, emotion.LabelSurprised, emotion.LabelSadAngry}
	for i, want := range wants {
		if view.Segments[i].Tag.Label != want {
			t.Fatalf("segment %d tag = %q; want %q", i, view.Segments[i].Tag.Label, want)
		}
	}
}

func TestSegmentTaggingRemoteLabelWins(t *testing.T) {
	// Remote label takes precedence even when the heuristic would disagree.
	res := &types.AnalysisResult{
		TranscriptSegments: []types.TranscriptSegment{
			{Start: 0, End: 1, Text: "I am so sad and angry"},
		},
		MergedTextEmotions: []types.MergedTextEmotion{
			{Text: "I am so sad and angry", Emotion: "happy"},
		},
	}

	view := Build(res)
	if view.Segments[0].Tag.Label != emotion.LabelHappy {
		t.Fatalf("segment tag = %q; want %q (remote label wins)", view.Segments[0].Tag.Label, emotion.LabelHappy)
	}
}

func TestSceneDialogueTagging(t *testing.T) {
	res := &types.AnalysisResult{
		CombinedScenes: []types.CombinedScene{
			{
				StartTime: 0,
				EndTime:   5,
				Dialogue:  []string{"such a happy moment", "everything is terrible and awful"},
			},
		},
	}

	view := Build(res)
	if len(view.Scenes) != 1 || len(view.Scenes[0].Dialogue) != 2 {
		t.Fatalf("unexpected scene shape: %+v", view.Scenes)
	}
	if got := view.Scenes[0].Dialogue[0].Tag.Label; got != emotion.LabelHappy {
		t.Fatalf("line 0 tag = %q; want %q", got, emotion.LabelHappy)
	}
	if got := view.Scenes[0].Dialogue[1].Tag.Label; got != emotion.LabelSadAngry {
		t.Fatalf("line 1 tag = %q; want %q", got, emotion.LabelSadAngry)
	}
}

func TestCaptionCap(t *testing.T) {
	captions := make([]string, config.MaxDisplayCaptions+5)
	for i := range captions {
		captions[i] = "caption"
	}
	res := &types.AnalysisResult{FrameCaptions: captions}

	view := Build(res)
	if len(view.Captions) != config.MaxDisplayCaptions {
		t.Fatalf("got %d captions; want %d", len(view.Captions), config.MaxDisplayCaptions)
	}
	// The source slice must be untouched.
	if len(res.FrameCaptions) != config.MaxDisplayCaptions+5 {
		t.Fatalf("source captions mutated: %d", len(res.FrameCaptions))
	}
}

func TestLanguagePreferred(t *testing.T) {
	res := &types.AnalysisResult{Language: "fr", TranscriptText: "this is clearly english text"}
	if view := Build(res); view.Language != "fr" {
		t.Fatalf("language = %q; want %q", view.Language, "fr")
	}
}

func TestLanguageDetectedFallback(t *testing.T) {
	res := &types.AnalysisResult{
		TranscriptText: "The quick brown fox jumps over the lazy dog while everyone watches the evening news together.",
	}
	if view := Build(res); view.Language != "en" {
		t.Fatalf("language = %q; want %q via detection", view.Language, "en")
	}
}

func TestLanguageUnknownWhenEmpty(t *testing.T) {
	if view := Build(&types.AnalysisResult{}); view.Language != "unknown" {
		t.Fatalf("language = %q; want %q", view.Language, "unknown")
	}
}

func TestBuildNilResult(t *testing.T) {
	view := Build(nil)
	if view == nil || view.Dominant.Label != emotion.LabelNeutral {
		t.Fatalf("nil result should build a neutral view model, got %+v", view)
	}
}
