package scoring

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"MediaScorer/internal/analyzer"
	"MediaScorer/internal/domain"
)

// Aggregator combines the five sub-scores into one composite report under a
// fixed policy. It is the synchronization barrier of the pipeline: callers
// hand it the complete sub-score set, never a partial one.
type Aggregator struct {
	policy Policy
	logger *slog.Logger
}

// NewAggregator validates the policy up front; a bad policy is a programming
// error, not a runtime condition.
func NewAggregator(policy Policy, logger *slog.Logger) (*Aggregator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{policy: policy, logger: logger}, nil
}

// Aggregate builds the composite report. A missing or out-of-range sub-score
// indicates a caller bug and fails loudly instead of being defaulted.
func (a *Aggregator) Aggregate(subs map[domain.Signal]domain.SubScore) (domain.CompositeReport, error) {
	if err := validateSubScores(subs); err != nil {
		return domain.CompositeReport{}, err
	}

	weighted := 0.0
	confidence := 0.0
	impacts := map[domain.Signal]float64{}
	for _, signal := range domain.Signals() {
		sub := subs[signal]
		impact := credibilityImpact(sub)
		impacts[signal] = impact
		weight := a.policy.Weights[signal]
		weighted += weight * impact
		confidence += weight * sub.Confidence
	}

	overall := int(math.Round(clamp(weighted, 0, 100)))
	category := a.categorize(overall, confidence, subs[domain.SignalBias].Value)

	report := domain.CompositeReport{
		OverallScore: overall,
		Category:     category,
		SubScores:    copySubScores(subs),
		Explanation:  a.explain(subs, impacts),
	}

	if a.logger != nil {
		a.logger.Debug("aggregated report",
			"overall", report.OverallScore,
			"category", report.Category,
			"confidence", confidence)
	}
	return report, nil
}

func validateSubScores(subs map[domain.Signal]domain.SubScore) error {
	for _, signal := range domain.Signals() {
		sub, ok := subs[signal]
		if !ok {
			return fmt.Errorf("aggregate: missing sub-score %q", signal)
		}
		if sub.Signal != signal {
			return fmt.Errorf("aggregate: sub-score %q carries signal %q", signal, sub.Signal)
		}
		lo, hi := valueRange(signal)
		if sub.Value < lo || sub.Value > hi {
			return fmt.Errorf("aggregate: sub-score %q value %v outside [%v,%v]", signal, sub.Value, lo, hi)
		}
		if sub.Confidence < 0 || sub.Confidence > 1 {
			return fmt.Errorf("aggregate: sub-score %q confidence %v outside [0,1]", signal, sub.Confidence)
		}
	}
	return nil
}

// valueRange declares each analyzer's output range.
func valueRange(signal domain.Signal) (float64, float64) {
	switch signal {
	case domain.SignalSentiment, domain.SignalBias:
		return -1, 1
	default:
		return 0, 100
	}
}

// credibilityImpact maps a sub-score onto the common [0,100] scale where
// higher means more credible. Direction-dependent: bias and sentiment impact
// is driven by intensity, not direction; evidence already points the right
// way; headline divergence and manipulation density are inverted.
func credibilityImpact(sub domain.SubScore) float64 {
	switch sub.Signal {
	case domain.SignalSentiment, domain.SignalBias:
		return clamp(100-math.Abs(sub.Value)*100, 0, 100)
	case domain.SignalEvidence:
		return clamp(sub.Value, 0, 100)
	default:
		return clamp(100-sub.Value, 0, 100)
	}
}

// categorize resolves the ordered threshold table, refining the leaning band
// with the bias direction. The confidence gate comes first: a report backed
// by nothing is labeled as such rather than given a flattering band.
func (a *Aggregator) categorize(overall int, confidence, skew float64) domain.Category {
	if confidence < a.policy.InsufficientFloor {
		return domain.CategoryInsufficientData
	}
	for _, row := range a.policy.Thresholds {
		if overall < row.Min {
			continue
		}
		if row.Category != categoryLeaning {
			return row.Category
		}
		switch analyzer.Direction(skew) {
		case "left":
			return domain.CategoryLeansLeft
		case "right":
			return domain.CategoryLeansRight
		default:
			return domain.CategoryBalanced
		}
	}
	// Unreachable once Validate enforced a 0-terminated table.
	return domain.CategoryLowCredibility
}

// explain lists each sufficiently-confident sub-score, ordered by how much
// credibility it cost, most damaging first.
func (a *Aggregator) explain(subs map[domain.Signal]domain.SubScore, impacts map[domain.Signal]float64) []string {
	type entry struct {
		signal domain.Signal
		damage float64
		text   string
	}

	var entries []entry
	for _, signal := range domain.Signals() {
		sub := subs[signal]
		if sub.Confidence < a.policy.ExplanationFloor {
			continue
		}
		damage := a.policy.Weights[signal] * (100 - impacts[signal])
		entries = append(entries, entry{signal: signal, damage: damage, text: describe(sub, impacts[signal])})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].damage > entries[j].damage
	})

	reasons := make([]string, 0, len(entries))
	for _, e := range entries {
		reasons = append(reasons, e.text)
	}
	return reasons
}

func copySubScores(subs map[domain.Signal]domain.SubScore) map[domain.Signal]domain.SubScore {
	out := make(map[domain.Signal]domain.SubScore, len(subs))
	for signal, sub := range subs {
		out[signal] = sub
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
