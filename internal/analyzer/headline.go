package analyzer

import (
	"regexp"
	"strings"

	"MediaScorer/internal/domain"
	"MediaScorer/internal/lexicon"
	"MediaScorer/internal/normalize"
)

var clickbaitExpr = regexp.MustCompile(`\b(shocking|unbelievable|miracle|stunning|bombshell|slams|destroys|exposed|imminent|you won't believe|this is why|what happens next)\b`)

// Headline scores divergence between a headline's framing and the body that
// follows it. Higher means stronger mismatch.
type Headline struct {
	manipulative *lexicon.Lexicon
}

// NewHeadline wires the shared manipulative-pattern lexicon for exaggeration
// detection.
func NewHeadline(store *lexicon.Store) *Headline {
	return &Headline{manipulative: store.Manipulative}
}

// Analyze combines three divergence components, each capped so no single one
// dominates: clickbait/absolutist markers in the headline itself, headline
// key terms missing from the body, and manipulative-pattern hits in the
// headline. Both inputs must already be normalized. An empty headline or
// body returns the neutral zero result with confidence 0.
func (h *Headline) Analyze(headline, body string) domain.SubScore {
	sub := domain.SubScore{Signal: domain.SignalHeadline}
	if headline == "" || body == "" {
		return sub
	}

	var matches []domain.Match

	markerScore := 0.0
	for _, loc := range clickbaitExpr.FindAllStringIndex(headline, -1) {
		markerScore += 12
		matches = append(matches, domain.Match{
			Phrase:   headline[loc[0]:loc[1]],
			Category: "clickbait-marker",
			Offset:   loc[0],
		})
	}
	markerScore += 10 * float64(strings.Count(headline, "!"))
	markerScore = clamp(markerScore, 0, 35)

	exaggeration := 0.0
	for _, hit := range h.manipulative.FindAll(headline) {
		exaggeration += hit.Weight * 10
		matches = append(matches, domain.Match{Phrase: hit.Phrase, Category: hit.Category, Offset: hit.Start})
	}
	exaggeration = clamp(exaggeration, 0, 30)

	keyTerms := headlineKeyTerms(headline)
	overlapScore := 0.0
	missing := 0
	for _, term := range keyTerms {
		if !containsWord(body, term) {
			missing++
		}
	}
	if len(keyTerms) > 0 {
		missingRatio := float64(missing) / float64(len(keyTerms))
		// Below 0.4 is normal paraphrasing; only the excess counts.
		if missingRatio > 0.4 {
			overlapScore = (missingRatio - 0.4) / 0.6 * 35
		}
	}

	sub.Value = clamp(markerScore+exaggeration+overlapScore, 0, 100)
	sub.Matches = matches
	sub.Confidence = headlineConfidence(len(keyTerms), normalize.WordCount(body))
	return sub
}

// headlineKeyTerms extracts the content-bearing terms whose presence in the
// body is checked. Short tokens and stopwords carry no claim.
func headlineKeyTerms(headline string) []string {
	var terms []string
	seen := map[string]struct{}{}
	for _, token := range normalize.Tokens(headline) {
		if len(token) < 4 || normalize.IsStopword(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		terms = append(terms, token)
	}
	return terms
}

func containsWord(text, word string) bool {
	idx := 0
	for {
		rel := strings.Index(text[idx:], word)
		if rel < 0 {
			return false
		}
		start := idx + rel
		end := start + len(word)
		if boundedAt(text, start, end) {
			return true
		}
		idx = start + 1
	}
}

func boundedAt(text string, start, end int) bool {
	if start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if end < len(text) && isWordByte(text[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

func headlineConfidence(keyTerms, bodyWords int) float64 {
	base := 0.3 + 0.05*float64(keyTerms)
	lengthBonus := clamp(float64(bodyWords)/400, 0, 1) * 0.25
	return clamp(base+lengthBonus, 0, 1)
}
