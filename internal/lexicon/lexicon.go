package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"MediaScorer/internal/normalize"
)

var categoryExpr = regexp.MustCompile(`^#\s*\[([a-z0-9-]+)\]\s*$`)

// Entry is one loaded lexicon line: either a literal phrase or a bounded
// regular expression. Both carry a compiled case-insensitive matcher so the
// scan loop does not have to distinguish the two forms.
type Entry struct {
	Phrase   string
	Literal  bool
	Weight   float64
	Category string
	matcher  *regexp.Regexp
}

// Match is one lexicon hit inside a piece of normalized text.
type Match struct {
	Phrase   string
	Category string
	Weight   float64
	Start    int
	End      int
}

// Lexicon is an immutable, named set of weighted phrases and patterns.
// Safe for concurrent use after Load returns.
type Lexicon struct {
	name    string
	entries []Entry
}

// Name returns the lexicon identifier used as the default match category.
func (l *Lexicon) Name() string {
	return l.name
}

// Len reports how many entries survived loading.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Load parses one-entry-per-line source text into an immutable lexicon.
//
// Blank lines are skipped. Lines starting with '#' are comments, except the
// header form "# [category]" which assigns the named category to following
// entries (the manipulative lexicon uses this to group rhetorical patterns).
// A trailing "|weight" sets a per-entry weight, default 1. Entries wrapped in
// slashes ("/.../") are compiled as case-insensitive regular expressions;
// everything else is a literal phrase matched on word boundaries. Malformed
// patterns, bad weights, and duplicate phrases are skipped with a warning,
// never a failure.
func Load(name string, r io.Reader, logger *slog.Logger) (*Lexicon, error) {
	lex := &Lexicon{name: name}
	seen := map[string]struct{}{}
	category := name

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "#") {
			if m := categoryExpr.FindStringSubmatch(raw); m != nil {
				category = m[1]
			}
			continue
		}

		spec, weight, err := splitWeight(raw)
		if err != nil {
			warn(logger, name, line, err)
			continue
		}

		entry, err := buildEntry(spec, weight, category)
		if err != nil {
			warn(logger, name, line, err)
			continue
		}

		if entry.Literal {
			if _, dup := seen[entry.Phrase]; dup {
				warn(logger, name, line, fmt.Errorf("duplicate phrase %q", entry.Phrase))
				continue
			}
			seen[entry.Phrase] = struct{}{}
		}

		lex.entries = append(lex.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", name, err)
	}

	return lex, nil
}

// splitWeight peels an optional "|weight" suffix off an entry. A '|' whose
// suffix is not numeric belongs to the entry itself (regex alternation), so
// the line is returned whole with the default weight.
func splitWeight(raw string) (string, float64, error) {
	idx := strings.LastIndex(raw, "|")
	if idx < 0 {
		return raw, 1, nil
	}

	weightText := strings.TrimSpace(raw[idx+1:])
	weight, err := strconv.ParseFloat(weightText, 64)
	if err != nil {
		return raw, 1, nil
	}
	if weight <= 0 {
		return "", 0, fmt.Errorf("non-positive weight %v", weight)
	}
	return strings.TrimSpace(raw[:idx]), weight, nil
}

func buildEntry(spec string, weight float64, category string) (Entry, error) {
	if len(spec) > 2 && strings.HasPrefix(spec, "/") && strings.HasSuffix(spec, "/") {
		body := spec[1 : len(spec)-1]
		matcher, err := regexp.Compile("(?i)" + body)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid pattern %q: %v", body, err)
		}
		return Entry{Phrase: body, Weight: weight, Category: category, matcher: matcher}, nil
	}

	phrase := normalize.Text(spec)
	if phrase == "" {
		return Entry{}, fmt.Errorf("empty phrase")
	}
	matcher, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return Entry{}, fmt.Errorf("compile phrase %q: %v", phrase, err)
	}
	return Entry{Phrase: phrase, Literal: true, Weight: weight, Category: category, matcher: matcher}, nil
}

func warn(logger *slog.Logger, name string, line int, err error) {
	if logger != nil {
		logger.Warn("skipping lexicon entry", "lexicon", name, "line", line, "reason", err.Error())
	}
}

// FindAll scans normalized text and returns every non-overlapping match,
// ordered by position. Where matches overlap, the longest one wins so a
// phrase never double-counts against one of its own substrings.
func (l *Lexicon) FindAll(text string) []Match {
	if text == "" || l == nil {
		return nil
	}

	var candidates []Match
	for _, entry := range l.entries {
		for _, loc := range entry.matcher.FindAllStringIndex(text, -1) {
			candidates = append(candidates, Match{
				Phrase:   text[loc[0]:loc[1]],
				Category: entry.Category,
				Weight:   entry.Weight,
				Start:    loc[0],
				End:      loc[1],
			})
		}
	}

	return CollapseOverlaps(candidates)
}

// CollapseOverlaps drops matches overlapped by a longer match. Analyzers that
// combine hits from several lexicons (left + right bias) run their merged
// slice through this before counting.
func CollapseOverlaps(matches []Match) []Match {
	if len(matches) == 0 {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		if li, lj := matches[i].End-matches[i].Start, matches[j].End-matches[j].Start; li != lj {
			return li > lj
		}
		return matches[i].Phrase < matches[j].Phrase
	})

	kept := matches[:0:0]
	lastEnd := -1
	for _, m := range matches {
		if m.Start < lastEnd {
			continue
		}
		kept = append(kept, m)
		lastEnd = m.End
	}
	return kept
}

// TotalWeight sums match weights.
func TotalWeight(matches []Match) float64 {
	var total float64
	for _, m := range matches {
		total += m.Weight
	}
	return total
}
