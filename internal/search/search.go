// Package search compiles user-supplied search patterns and applies them to
// transactions and to display text.
//
// A pattern is first tried as a case-insensitive regular expression. When it
// does not compile, the engine falls back to a case-insensitive substring
// match so that malformed input degrades to literal matching.
package search

import (
	"regexp"
	"strings"
	"unicode"

	"fjacquet/finance-tracker/internal/models"
)

// Kind tags the concrete matcher variant.
type Kind string

const (
	KindRegex     Kind = "regex"
	KindSubstring Kind = "substring"
)

// Matcher is a compiled search predicate.
type Matcher interface {
	// Kind reports which variant was selected at compile time.
	Kind() Kind
	// Pattern returns the raw input the matcher was compiled from.
	Pattern() string
	// MatchString reports whether text contains a match.
	MatchString(text string) bool
	// FindAllIndex returns the non-overlapping, non-empty match spans in text.
	FindAllIndex(text string) [][]int
}

// RegexMatcher matches a case-insensitive regular expression.
type RegexMatcher struct {
	raw string
	re  *regexp.Regexp
}

func (m *RegexMatcher) Kind() Kind      { return KindRegex }
func (m *RegexMatcher) Pattern() string { return m.raw }

func (m *RegexMatcher) MatchString(text string) bool {
	return m.re.MatchString(text)
}

func (m *RegexMatcher) FindAllIndex(text string) [][]int {
	var spans [][]int
	for _, loc := range m.re.FindAllStringIndex(text, -1) {
		if loc[1] > loc[0] {
			spans = append(spans, loc)
		}
	}
	return spans
}

// SubstringMatcher matches a literal, case-folded substring.
type SubstringMatcher struct {
	raw    string
	needle string
}

func (m *SubstringMatcher) Kind() Kind      { return KindSubstring }
func (m *SubstringMatcher) Pattern() string { return m.raw }

func (m *SubstringMatcher) MatchString(text string) bool {
	return strings.Contains(strings.ToLower(text), m.needle)
}

func (m *SubstringMatcher) FindAllIndex(text string) [][]int {
	if m.needle == "" {
		return nil
	}
	lower, offsets := foldWithOffsets(text)
	var spans [][]int
	for start := 0; start < len(lower); {
		i := strings.Index(lower[start:], m.needle)
		if i < 0 {
			break
		}
		begin := start + i
		end := begin + len(m.needle)
		spans = append(spans, []int{offsets[begin], offsets[end]})
		start = end
	}
	return spans
}

// foldWithOffsets lowers text rune by rune. offsets[k] is the byte offset in
// text of the rune that produced folded byte k; offsets[len(folded)] is
// len(text). Lowering can change byte lengths outside ASCII ("İ" -> "i").
func foldWithOffsets(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		n, _ := b.WriteRune(unicode.ToLower(r))
		for ; n > 0; n-- {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(text))
	return b.String(), offsets
}

// Compile turns raw input into a Matcher. Empty input yields nil, meaning
// "match everything". Input that is not a valid regular expression yields a
// SubstringMatcher instead of an error.
func Compile(raw string) Matcher {
	if raw == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + raw)
	if err != nil {
		return &SubstringMatcher{raw: raw, needle: strings.ToLower(raw)}
	}
	return &RegexMatcher{raw: raw, re: re}
}

// MatchTransaction reports whether any searchable field of t matches m.
// A nil matcher matches every transaction.
func MatchTransaction(t models.Transaction, m Matcher) bool {
	if m == nil {
		return true
	}
	return m.MatchString(t.Description) ||
		m.MatchString(t.Category) ||
		m.MatchString(t.Date) ||
		m.MatchString(t.AmountText())
}

// Filter returns the transactions matched by m, preserving their order.
func Filter(transactions []models.Transaction, m Matcher) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if MatchTransaction(t, m) {
			out = append(out, t)
		}
	}
	return out
}
