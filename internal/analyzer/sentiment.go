package analyzer

import (
	"MediaScorer/internal/domain"
	"MediaScorer/internal/lexicon"
	"MediaScorer/internal/normalize"
)

// Sentiment scores emotional polarity by counting weighted positive and
// negative cues from the sentiment lexicons.
type Sentiment struct {
	positive *lexicon.Lexicon
	negative *lexicon.Lexicon
}

// NewSentiment wires the positive/negative cue lexicons.
func NewSentiment(store *lexicon.Store) *Sentiment {
	return &Sentiment{positive: store.Positive, negative: store.Negative}
}

// Analyze returns a polarity sub-score in [-1,1]. Empty text yields the
// neutral midpoint with confidence 0.
func (s *Sentiment) Analyze(text string) domain.SubScore {
	sub := domain.SubScore{Signal: domain.SignalSentiment}
	words := normalize.WordCount(text)
	if words == 0 {
		return sub
	}

	hits := lexicon.CollapseOverlaps(append(s.positive.FindAll(text), s.negative.FindAll(text)...))
	posWeight := 0.0
	negWeight := 0.0
	for _, h := range hits {
		switch h.Category {
		case "positive":
			posWeight += h.Weight
		case "negative":
			negWeight += h.Weight
		}
	}

	total := posWeight + negWeight
	polarity := (posWeight - negWeight) / max(1, total)

	sub.Value = clamp(polarity, -1, 1)
	sub.Matches = toMatches(hits)
	sub.Confidence = cueConfidence(words, len(hits))
	return sub
}

// cueConfidence grows with cue density and text length; zero cues in real
// text still carries some signal, so the floor is non-zero.
func cueConfidence(words, hits int) float64 {
	base := 0.2 + 0.08*float64(hits)
	lengthBonus := clamp(float64(words)/400, 0, 1) * 0.2
	return clamp(base+lengthBonus, 0, 1)
}
