// Package analyzer holds the independent heuristic analyzers feeding the
// score aggregator. Every analyzer is a pure function of normalized text and
// immutable lexicon state: no I/O, no shared mutable state, deterministic
// output, so invocations may run concurrently without coordination.
package analyzer

import (
	"MediaScorer/internal/domain"
	"MediaScorer/internal/lexicon"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toMatches converts lexicon hits into report matches, preserving position
// order from CollapseOverlaps.
func toMatches(hits []lexicon.Match) []domain.Match {
	if len(hits) == 0 {
		return nil
	}
	out := make([]domain.Match, 0, len(hits))
	for _, h := range hits {
		out = append(out, domain.Match{Phrase: h.Phrase, Category: h.Category, Offset: h.Start})
	}
	return out
}
