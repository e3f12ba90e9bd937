package domain

import "time"

// Signal identifies one independent analysis axis.
type Signal string

const (
	SignalSentiment    Signal = "sentiment"
	SignalBias         Signal = "bias"
	SignalEvidence     Signal = "evidence"
	SignalHeadline     Signal = "headline"
	SignalManipulation Signal = "manipulation"
)

// Signals returns every signal in a fixed order. Aggregation and explanation
// generation iterate this slice instead of a map so output is deterministic.
func Signals() []Signal {
	return []Signal{
		SignalSentiment,
		SignalBias,
		SignalEvidence,
		SignalHeadline,
		SignalManipulation,
	}
}

// Match records one lexicon or pattern hit inside analyzed text.
type Match struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category"`
	Offset   int    `json:"offset"`
}

// SubScore is one analyzer's bounded assessment of its signal. Value ranges
// differ per signal: sentiment and bias use [-1,1], the rest use [0,100].
// Confidence in [0,1] reflects how much evidence backed the value.
type SubScore struct {
	Signal     Signal  `json:"signal"`
	Value      float64 `json:"value"`
	Matches    []Match `json:"matches,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Category labels the composite assessment.
type Category string

const (
	CategoryBalanced         Category = "Balanced"
	CategoryLeansLeft        Category = "Leans-Left"
	CategoryLeansRight       Category = "Leans-Right"
	CategoryHighlyBiased     Category = "Highly-Biased"
	CategoryLowCredibility   Category = "Low-Credibility"
	CategoryInsufficientData Category = "Insufficient-Data"
)

// CompositeReport is the aggregated bias/credibility assessment for one
// article. Created once per analysis, never mutated afterwards.
type CompositeReport struct {
	OverallScore int                 `json:"overall_score"`
	Category     Category            `json:"category"`
	SubScores    map[Signal]SubScore `json:"sub_scores"`
	Explanation  []string            `json:"explanation"`
}

// StoredReport is the persisted summary row for one analyzed URL.
type StoredReport struct {
	URL          string    `json:"url"`
	Headline     string    `json:"headline"`
	OverallScore int       `json:"overall_score"`
	Category     Category  `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
}
