package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	tagExpr        = regexp.MustCompile(`<[^<>]+>`)
	entityExpr     = regexp.MustCompile(`&#?[a-zA-Z0-9]{2,8};`)
	whitespaceExpr = regexp.MustCompile(`\s+`)
)

// Text lowercases raw input, strips markup remnants and HTML entities, and
// collapses runs of whitespace into single spaces. The function is idempotent
// and maps empty or whitespace-only input to the empty string.
func Text(raw string) string {
	out := tagExpr.ReplaceAllString(raw, " ")
	out = entityExpr.ReplaceAllString(out, " ")
	out = strings.ToLower(out)
	out = whitespaceExpr.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Tokens splits normalized text into word tokens. Apostrophes inside words
// are kept so contractions stay single tokens.
func Tokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// WordCount returns the number of word tokens in normalized text.
func WordCount(text string) int {
	return len(Tokens(text))
}

// IsStopword reports whether a token carries no topical content. The set is
// intentionally small; it only has to filter headline key terms.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "but": {}, "by": {},
	"can": {}, "could": {}, "did": {}, "do": {}, "does": {}, "down": {},
	"for": {}, "from": {}, "had": {}, "has": {}, "have": {}, "he": {},
	"her": {}, "here": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "just": {},
	"more": {}, "most": {}, "my": {}, "no": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "on": {}, "only": {}, "or": {}, "other": {},
	"our": {}, "out": {}, "over": {}, "own": {}, "said": {}, "she": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "up": {}, "very": {}, "was": {}, "we": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "why": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}
