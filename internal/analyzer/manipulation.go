package analyzer

import (
	"MediaScorer/internal/domain"
	"MediaScorer/internal/lexicon"
	"MediaScorer/internal/normalize"
)

// Manipulation scores the density of manipulative rhetorical patterns from
// the category-grouped manipulative lexicon.
type Manipulation struct {
	lex *lexicon.Lexicon
}

// NewManipulation wires the manipulative-pattern lexicon.
func NewManipulation(store *lexicon.Store) *Manipulation {
	return &Manipulation{lex: store.Manipulative}
}

// Analyze returns the weighted match density per 100 words, scaled onto
// [0,100]. The score is monotonic in the number of matches, and any match at
// all keeps it above zero. Matches record category and phrase for
// explanation generation.
func (m *Manipulation) Analyze(text string) domain.SubScore {
	sub := domain.SubScore{Signal: domain.SignalManipulation}
	words := normalize.WordCount(text)
	if words == 0 {
		return sub
	}

	hits := m.lex.FindAll(text)
	totalWeight := lexicon.TotalWeight(hits)

	per100 := totalWeight * 100 / max(50, float64(words))
	score := clamp(per100*10, 0, 100)
	if totalWeight > 0 && score < 1 {
		score = 1
	}

	sub.Value = score
	sub.Matches = toMatches(hits)
	sub.Confidence = cueConfidence(words, len(hits))
	return sub
}
