package emotion

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Label
	}{
		{"negative only", "I am so sad and angry", LabelSadAngry},
		{"positive only", "what a wonderful, happy day full of laughter", LabelHappy},
		{"surprise only", "wow, that was a total shock", LabelSurprised},
		{"tie is neutral", "happy but sad", LabelNeutral},
		{"no keywords", "the meeting starts at nine", LabelNeutral},
		{"empty", "", LabelNeutral},
		{"whitespace only", "   \t\n  ", LabelNeutral},
		{"repeats count once", "sad sad sad but happy and glad", LabelHappy},
		{"mixed case", "SO HAPPY and GLAD today", LabelHappy},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.text)
			if got.Label != c.want {
				t.Fatalf("Classify(%q) = %q; want %q", c.text, got.Label, c.want)
			}
		})
	}
}

func TestClassifyTagColors(t *testing.T) {
	for _, label := range []Label{LabelHappy, LabelSadAngry, LabelSurprised, LabelNeutral} {
		tag := TagFor(label)
		if tag.Color == "" || tag.TextColor == "" {
			t.Fatalf("TagFor(%q) has empty color pair: %+v", label, tag)
		}
	}
}

func TestClassifyLabel(t *testing.T) {
	cases := []struct {
		label string
		want  Label
	}{
		{"happy", LabelHappy},
		{"joy", LabelHappy},
		{"sad", LabelSadAngry},
		{"angry", LabelSadAngry},
		{"anger", LabelSadAngry},
		{"fear", LabelSadAngry},
		{"disgust", LabelSadAngry},
		{"surprise", LabelSurprised},
		{"Surprise", LabelSurprised},
		{"neutral", LabelNeutral},
		{"error", LabelNeutral},
		{"", LabelNeutral},
		{"something-new", LabelNeutral},
	}

	for _, c := range cases {
		got := ClassifyLabel(c.label)
		if got.Label != c.want {
			t.Fatalf("ClassifyLabel(%q) = %q; want %q", c.label, got.Label, c.want)
		}
	}
}
