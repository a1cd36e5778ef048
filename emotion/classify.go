// Package emotion maps free text and remote emotion labels onto the small
// categorical tag space the UI can render.
package emotion

import "strings"

// Label is one of the four categorical tags the UI renders.
type Label string

const (
	LabelHappy     Label = "happy"
	LabelSadAngry  Label = "sad/angry"
	LabelSurprised Label = "surprised"
	LabelNeutral   Label = "neutral"
)

// Tag pairs a label with the color pair used to render it. Tags are
// computed, never stored or transmitted.
type Tag struct {
	Label     Label
	Color     string // background
	TextColor string
}

var tagByLabel = map[Label]Tag{
	LabelHappy:     {Label: LabelHappy, Color: "#FFD166", TextColor: "#1A1A1A"},
	LabelSadAngry:  {Label: LabelSadAngry, Color: "#EF476F", TextColor: "#FAFAFA"},
	LabelSurprised: {Label: LabelSurprised, Color: "#118AB2", TextColor: "#FAFAFA"},
	LabelNeutral:   {Label: LabelNeutral, Color: "#626262", TextColor: "#FAFAFA"},
}

// Keyword groups for the heuristic. Each keyword counts at most once per
// input, no matter how often it repeats.
var (
	positiveKeywords = []string{
		"happy", "joy", "glad", "great", "love", "excited",
		"wonderful", "awesome", "smile", "laugh", "delight",
	}
	negativeKeywords = []string{
		"sad", "angry", "mad", "hate", "terrible", "awful",
		"cry", "upset", "furious", "fear", "scared", "disgust",
	}
	surpriseKeywords = []string{
		"surprise", "shock", "unexpected", "wow", "amazed",
		"astonish", "sudden",
	}
)

// Substring groups for mapping remote categorical labels. The remote
// classifier emits labels like "happy", "anger", "fear" or "surprise".
var (
	positiveLabels = []string{"happy", "joy", "content"}
	negativeLabels = []string{"sad", "anger", "angry", "fear", "disgust"}
	surpriseLabels = []string{"surprise"}
)

// TagFor returns the tag for a known label, defaulting to neutral.
func TagFor(label Label) Tag {
	if t, ok := tagByLabel[label]; ok {
		return t
	}
	return tagByLabel[LabelNeutral]
}

// Classify scores text against the three keyword groups and picks a tag.
// Precedence is fixed so ties resolve deterministically: positive beats
// negative beats surprise, and any tie among the maxima is neutral.
func Classify(text string) Tag {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return tagByLabel[LabelNeutral]
	}

	pos := countHits(t, positiveKeywords)
	neg := countHits(t, negativeKeywords)
	sur := countHits(t, surpriseKeywords)

	switch {
	case pos > neg && pos > sur:
		return tagByLabel[LabelHappy]
	case neg > pos && neg > sur:
		return tagByLabel[LabelSadAngry]
	case sur > pos && sur > neg:
		return tagByLabel[LabelSurprised]
	default:
		return tagByLabel[LabelNeutral]
	}
}

// ClassifyLabel maps a remote-supplied emotion label onto the tag space.
// Remote labels always win over the heuristic; this is only consulted when
// the pipeline actually produced a label for an item.
func ClassifyLabel(label string) Tag {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return tagByLabel[LabelNeutral]
	}

	switch {
	case containsAny(l, positiveLabels):
		return tagByLabel[LabelHappy]
	case containsAny(l, negativeLabels):
		return tagByLabel[LabelSadAngry]
	case containsAny(l, surpriseLabels):
		return tagByLabel[LabelSurprised]
	default:
		return tagByLabel[LabelNeutral]
	}
}

// countHits counts how many keywords appear in text, one point per keyword.
func countHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
