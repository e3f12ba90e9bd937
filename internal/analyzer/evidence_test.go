package analyzer

import "testing"

func TestEvidenceNoMarkers(t *testing.T) {
	t.Parallel()

	e := NewEvidence()
	sub := e.Analyze("the weather was pleasant for most of the afternoon")

	if sub.Value != 0 {
		t.Fatalf("text without markers must score 0, got %v", sub.Value)
	}
	if len(sub.Matches) != 0 {
		t.Fatalf("unexpected matches: %+v", sub.Matches)
	}
}

func TestEvidenceEmptyText(t *testing.T) {
	t.Parallel()

	e := NewEvidence()
	sub := e.Analyze("")
	if sub.Value != 0 || sub.Confidence != 0 {
		t.Fatalf("empty text should score 0 with confidence 0, got %+v", sub)
	}
}

func TestEvidenceDetectsSourcingMarkers(t *testing.T) {
	t.Parallel()

	e := NewEvidence()
	text := `according to the study, 45 percent of respondents agreed. ` +
		`"the effect was larger than anyone predicted", researchers said.`

	sub := e.Analyze(text)
	if sub.Value <= 0 {
		t.Fatalf("sourced text must score above 0, got %v", sub.Value)
	}
	if sub.Value > 100 {
		t.Fatalf("score must be clamped to 100, got %v", sub.Value)
	}

	categories := map[string]bool{}
	for _, m := range sub.Matches {
		categories[m.Category] = true
	}
	for _, want := range []string{"attribution", "quote", "statistic", "research"} {
		if !categories[want] {
			t.Fatalf("expected a %s marker, got %+v", want, sub.Matches)
		}
	}
}

func TestEvidenceVagueAttributionPenalty(t *testing.T) {
	t.Parallel()

	e := NewEvidence()

	cited := e.Analyze("according to the report, the policy reduced costs")
	vague := e.Analyze("experts claim the policy reduced costs, sources say")

	if cited.Value <= vague.Value {
		t.Fatalf("cited text (%v) must outscore vague attribution (%v)", cited.Value, vague.Value)
	}
}

func TestEvidenceLengthNormalization(t *testing.T) {
	t.Parallel()

	e := NewEvidence()

	short := `according to the census, 12 percent of households moved.`
	long := short
	for i := 0; i < 6; i++ {
		long += ` according to the census, 12 percent of households moved.`
	}

	a := e.Analyze(short)
	b := e.Analyze(long)

	// Same marker density at different lengths should not collapse to zero
	// for the longer text.
	if b.Value <= 0 {
		t.Fatalf("longer article with same density scored %v", b.Value)
	}
	if a.Value <= 0 {
		t.Fatalf("short article scored %v", a.Value)
	}
}
