package analyzer

import (
	"strings"
	"testing"

	"MediaScorer/internal/lexicon"
)

// testStore builds a small, fully controlled lexicon set so score
// expectations stay readable.
func testStore(t *testing.T) *lexicon.Store {
	t.Helper()

	load := func(name, source string) *lexicon.Lexicon {
		lex, err := lexicon.Load(name, strings.NewReader(source), nil)
		if err != nil {
			t.Fatalf("load %s lexicon: %v", name, err)
		}
		return lex
	}

	return &lexicon.Store{
		Left: load("left", `
social justice
climate crisis
living wage
corporate greed
tax the rich
`),
		Right: load("right", `
family values
radical left
socialist agenda
open borders
law and order
`),
		Manipulative: load("manipulative", `
# [vague-attribution]
experts fear
sources say
# [absolutist]
/\b(always|never|every)\b/
# [clickbait]
shocking|2
`),
		Positive: load("positive", `
good
strong
hopeful
recovery
`),
		Negative: load("negative", `
bad
crisis
awful|2
collapse
`),
	}
}
