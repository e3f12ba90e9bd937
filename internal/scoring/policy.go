package scoring

import (
	"fmt"
	"math"

	"MediaScorer/internal/domain"
)

// Threshold is one row of the ordered category table, scanned high-to-low on
// the overall score; the first row whose Min is met wins.
type Threshold struct {
	Min      int
	Category domain.Category
}

// categoryLeaning is an internal sentinel: the band it labels is resolved to
// Leans-Left / Leans-Right / Balanced from the bias skew direction.
const categoryLeaning domain.Category = "leaning"

// Policy centralizes every tunable of the aggregation: signal weights, the
// category threshold table, and the confidence gates. Keeping them in one
// struct makes the policy auditable and testable apart from the analyzers.
type Policy struct {
	// Weights assigns each signal's contribution to the overall score.
	// Must cover every signal and sum to 1.
	Weights map[domain.Signal]float64

	// Thresholds is scanned top-down; rows must be ordered by descending Min
	// and end at 0 so every score resolves.
	Thresholds []Threshold

	// ExplanationFloor is the minimum sub-score confidence for inclusion in
	// the explanation list.
	ExplanationFloor float64

	// InsufficientFloor gates the whole report: below this aggregate
	// confidence the category is Insufficient-Data regardless of score.
	InsufficientFloor float64
}

// DefaultPolicy returns the shipped aggregation policy. The exact numbers
// are editorial tuning, not structural requirements; overrides come from
// configuration.
func DefaultPolicy() Policy {
	return Policy{
		Weights: map[domain.Signal]float64{
			domain.SignalSentiment:    0.15,
			domain.SignalBias:         0.25,
			domain.SignalEvidence:     0.20,
			domain.SignalHeadline:     0.20,
			domain.SignalManipulation: 0.20,
		},
		Thresholds: []Threshold{
			{Min: 80, Category: domain.CategoryBalanced},
			{Min: 55, Category: categoryLeaning},
			{Min: 30, Category: domain.CategoryHighlyBiased},
			{Min: 0, Category: domain.CategoryLowCredibility},
		},
		ExplanationFloor:  0.25,
		InsufficientFloor: 0.05,
	}
}

// Validate rejects malformed policies before any analysis runs.
func (p Policy) Validate() error {
	sum := 0.0
	for _, signal := range domain.Signals() {
		weight, ok := p.Weights[signal]
		if !ok {
			return fmt.Errorf("policy: missing weight for signal %q", signal)
		}
		if weight < 0 {
			return fmt.Errorf("policy: negative weight %v for signal %q", weight, signal)
		}
		sum += weight
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("policy: weights sum to %v, want 1", sum)
	}

	if len(p.Thresholds) == 0 {
		return fmt.Errorf("policy: empty threshold table")
	}
	prev := math.MaxInt
	for i, row := range p.Thresholds {
		if row.Min >= prev {
			return fmt.Errorf("policy: thresholds not strictly descending at row %d", i)
		}
		prev = row.Min
	}
	if p.Thresholds[len(p.Thresholds)-1].Min != 0 {
		return fmt.Errorf("policy: last threshold must be 0 so every score resolves")
	}

	if p.ExplanationFloor < 0 || p.ExplanationFloor > 1 {
		return fmt.Errorf("policy: explanation floor %v outside [0,1]", p.ExplanationFloor)
	}
	if p.InsufficientFloor < 0 || p.InsufficientFloor > 1 {
		return fmt.Errorf("policy: insufficient-data floor %v outside [0,1]", p.InsufficientFloor)
	}
	return nil
}
