package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"MediaScorer/internal/analyzer"
	"MediaScorer/internal/domain"
)

// describe renders one sub-score as a human-readable reason line.
func describe(sub domain.SubScore, impact float64) string {
	switch sub.Signal {
	case domain.SignalSentiment:
		return describeSentiment(sub)
	case domain.SignalBias:
		return describeBias(sub)
	case domain.SignalEvidence:
		return describeEvidence(sub)
	case domain.SignalHeadline:
		return describeHeadline(sub)
	case domain.SignalManipulation:
		return describeManipulation(sub)
	default:
		return fmt.Sprintf("%s: impact %.0f/100", sub.Signal, impact)
	}
}

func describeSentiment(sub domain.SubScore) string {
	tone := "neutral"
	switch {
	case sub.Value > 0.2:
		tone = "strongly positive"
	case sub.Value < -0.2:
		tone = "strongly negative"
	}
	return fmt.Sprintf("sentiment: %s tone (polarity %+.2f, %d emotional cues)", tone, sub.Value, len(sub.Matches))
}

func describeBias(sub domain.SubScore) string {
	direction := analyzer.Direction(sub.Value)
	intensity := int(math.Round(math.Abs(sub.Value) * 100))
	if direction == "none" {
		return fmt.Sprintf("bias: no political skew detected (%d charged phrases)", len(sub.Matches))
	}
	return fmt.Sprintf("bias: leans %s (intensity %d/100)%s", direction, intensity, topPhrases(sub.Matches))
}

func describeEvidence(sub domain.SubScore) string {
	if len(sub.Matches) == 0 {
		return "evidence: no sourcing markers found"
	}
	return fmt.Sprintf("evidence: support %d/100 (%d sourcing markers)", int(math.Round(sub.Value)), len(sub.Matches))
}

func describeHeadline(sub domain.SubScore) string {
	return fmt.Sprintf("headline: divergence from body %d/100%s", int(math.Round(sub.Value)), topPhrases(sub.Matches))
}

func describeManipulation(sub domain.SubScore) string {
	if len(sub.Matches) == 0 {
		return "manipulation: no manipulative patterns found"
	}
	return fmt.Sprintf("manipulation: density %d/100 across %s%s",
		int(math.Round(sub.Value)), categoryList(sub.Matches), topPhrases(sub.Matches))
}

// topPhrases lists up to three matched phrases, deduplicated, in match order.
func topPhrases(matches []domain.Match) string {
	if len(matches) == 0 {
		return ""
	}
	seen := map[string]struct{}{}
	var phrases []string
	for _, m := range matches {
		if _, dup := seen[m.Phrase]; dup {
			continue
		}
		seen[m.Phrase] = struct{}{}
		phrases = append(phrases, fmt.Sprintf("%q", m.Phrase))
		if len(phrases) == 3 {
			break
		}
	}
	return ", e.g. " + strings.Join(phrases, ", ")
}

func categoryList(matches []domain.Match) string {
	seen := map[string]struct{}{}
	var categories []string
	for _, m := range matches {
		if _, dup := seen[m.Category]; dup {
			continue
		}
		seen[m.Category] = struct{}{}
		categories = append(categories, m.Category)
	}
	sort.Strings(categories)
	return strings.Join(categories, ", ")
}
