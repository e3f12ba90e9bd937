package analyzer

import (
	"regexp"
	"sort"

	"MediaScorer/internal/domain"
	"MediaScorer/internal/normalize"
)

// Structural markers of sourcing. These are fixed patterns rather than a
// lexicon file: they describe article structure, not editorial vocabulary.
var evidenceMarkers = []struct {
	category string
	weight   float64
	expr     *regexp.Regexp
}{
	{"attribution", 2, regexp.MustCompile(`\b(according to|said|says|stated|told|testified|confirmed|announced|reported|reports)\b`)},
	{"quote", 2, regexp.MustCompile(`"[^"]{10,400}"`)},
	{"statistic", 1.5, regexp.MustCompile(`\b\d+(\.\d+)?\s*(%|percent|per cent|percentage points?)\b`)},
	{"research", 1, regexp.MustCompile(`\b(study|studies|survey|surveys|research|researchers|data|evidence|statistics|findings|journal)\b`)},
	{"reference", 1.5, regexp.MustCompile(`https?://\S+`)},
}

// Vague attributions undercut the markers above; counted as a penalty, the
// same trade-off the scoring started with.
var vagueAttributionExpr = regexp.MustCompile(`\b(some say|many believe|people think|experts claim|sources say|it is believed|reportedly|allegedly)\b`)

// Evidence scores the presence of attributions, quotes, statistics, and
// references, normalized by text length so long articles are not penalized.
type Evidence struct{}

// NewEvidence builds the evidence analyzer; it carries no state.
func NewEvidence() *Evidence {
	return &Evidence{}
}

// Analyze returns an evidentiary-support score in [0,100]. No markers found
// is score 0, a legitimate signal of unsourced writing, not an error.
func (e *Evidence) Analyze(text string) domain.SubScore {
	sub := domain.SubScore{Signal: domain.SignalEvidence}
	words := normalize.WordCount(text)
	if words == 0 {
		return sub
	}

	var matches []domain.Match
	markerWeight := 0.0
	for _, marker := range evidenceMarkers {
		for _, loc := range marker.expr.FindAllStringIndex(text, -1) {
			markerWeight += marker.weight
			matches = append(matches, domain.Match{
				Phrase:   text[loc[0]:loc[1]],
				Category: marker.category,
				Offset:   loc[0],
			})
		}
	}

	vagueCount := len(vagueAttributionExpr.FindAllString(text, -1))

	// Markers per 100 words, with a short-text floor so a two-sentence blurb
	// with one quote does not look impeccably sourced.
	per100 := markerWeight * 100 / max(40, float64(words))
	vaguePer100 := float64(vagueCount) * 100 / max(40, float64(words))
	score := clamp(per100*12-vaguePer100*6, 0, 100)

	sort.Slice(matches, func(i, j int) bool { return matches[i].Offset < matches[j].Offset })

	sub.Value = score
	sub.Matches = matches
	sub.Confidence = cueConfidence(words, len(matches))
	return sub
}
