package analyzer

import (
	"MediaScorer/internal/domain"
	"MediaScorer/internal/lexicon"
	"MediaScorer/internal/normalize"
)

// Bias scores left/right lexical skew against the two political lexicons.
type Bias struct {
	left  *lexicon.Lexicon
	right *lexicon.Lexicon
}

// NewBias wires the left- and right-leaning term lexicons.
func NewBias(store *lexicon.Store) *Bias {
	return &Bias{left: store.Left, right: store.Right}
}

// Analyze returns the skew in [-1,1]: -1 is fully left, +1 fully right.
// Matches from both lexicons are merged before overlap collapsing so a long
// phrase in one lexicon suppresses substrings from the other. Zero matches
// yield skew 0 with a low but non-zero confidence: the structural absence of
// charged language is itself a signal.
func (b *Bias) Analyze(text string) domain.SubScore {
	sub := domain.SubScore{Signal: domain.SignalBias}
	words := normalize.WordCount(text)
	if words == 0 {
		return sub
	}

	hits := lexicon.CollapseOverlaps(append(b.left.FindAll(text), b.right.FindAll(text)...))
	leftWeight := 0.0
	rightWeight := 0.0
	for _, h := range hits {
		switch h.Category {
		case "left":
			leftWeight += h.Weight
		case "right":
			rightWeight += h.Weight
		}
	}

	skew := (rightWeight - leftWeight) / max(1, rightWeight+leftWeight)

	sub.Value = clamp(skew, -1, 1)
	sub.Matches = toMatches(hits)
	sub.Confidence = cueConfidence(words, len(hits))
	return sub
}

// Direction labels a skew value. The dead zone around zero keeps a single
// stray phrase from flipping an otherwise neutral article.
func Direction(skew float64) string {
	switch {
	case skew < -0.05:
		return "left"
	case skew > 0.05:
		return "right"
	default:
		return "none"
	}
}
