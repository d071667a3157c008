package search

import (
	"testing"

	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(desc, category, date, amount string) models.Transaction {
	return models.Transaction{
		Description: desc,
		Category:    category,
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestCompile(t *testing.T) {
	assert.Nil(t, Compile(""))

	m := Compile("ren.")
	require.NotNil(t, m)
	assert.Equal(t, KindRegex, m.Kind())
	assert.Equal(t, "ren.", m.Pattern())
	assert.True(t, m.MatchString("RENT"))

	fallback := Compile("[")
	require.NotNil(t, fallback)
	assert.Equal(t, KindSubstring, fallback.Kind())
	assert.True(t, fallback.MatchString("Rent ["))
	assert.False(t, fallback.MatchString("Food"))
}

func TestFilter_InvalidPatternFallsBackToSubstring(t *testing.T) {
	list := []models.Transaction{
		tx("Rent [", "Bills", "2024-01-01", "100"),
		tx("Food", "Groceries", "2024-01-02", "20"),
	}

	got := Filter(list, Compile("["))
	require.Len(t, got, 1)
	assert.Equal(t, "Rent [", got[0].Description)
}

func TestFilter_MatchesAnyField(t *testing.T) {
	list := []models.Transaction{
		tx("Coffee", "Eating Out", "2024-03-05", "3.5"),
		tx("Bus pass", "Transport", "2024-04-01", "45"),
		tx("Books", "Education", "2024-03-20", "12.25"),
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"empty matches all", "", []string{"Coffee", "Bus pass", "Books"}},
		{"description", "coffee", []string{"Coffee"}},
		{"category", "^trans", []string{"Bus pass"}},
		{"date", `2024-03-\d+`, []string{"Coffee", "Books"}},
		{"amount formatted to two places", `^3\.50$`, []string{"Coffee"}},
		{"amount fraction", `\.25`, []string{"Books"}},
		{"no match", "rent", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(list, Compile(tt.pattern))
			names := make([]string, 0, len(got))
			for _, g := range got {
				names = append(names, g.Description)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "Rent", Highlight("Rent", nil))
	assert.Equal(t, "<mark>Re</mark>nt and <mark>re</mark>pairs", Highlight("Rent and repairs", Compile("re")))
	assert.Equal(t, "Rent <mark>[</mark>", Highlight("Rent [", Compile("[")))
	assert.Equal(t, "no match", Highlight("no match", Compile("zzz")))

	// Empty matches are not wrapped.
	assert.Equal(t, "abc", Highlight("abc", Compile("x*")))
}

func TestHighlightWith_CustomMarker(t *testing.T) {
	marker := Marker{Open: "[", Close: "]"}
	assert.Equal(t, "[Foo]d [foo]", HighlightWith("Food foo", Compile("foo"), marker))
}

func TestSubstringMatcher_FindAllIndex(t *testing.T) {
	m := Compile("((")
	require.Equal(t, KindSubstring, m.Kind())
	assert.Equal(t, [][]int{{0, 2}, {2, 4}}, m.FindAllIndex("(((("))
	assert.Nil(t, m.FindAllIndex("none"))
}

func TestSubstringMatcher_FoldingChangesByteLength(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    string
	}{
		{"dotted capital I", "(İs", "Trip (İstanbul)", "Trip <mark>(İs</mark>tanbul)"},
		{"lowercase pattern on dotted capital", "(is", "Trip (İstanbul)", "Trip <mark>(İs</mark>tanbul)"},
		{"match after shrinking rune", "[x", "İİ [X] İ", "İİ <mark>[X</mark>] İ"},
		{"kelvin sign", "(k", "5 (\u212a)", "5 <mark>(\u212a</mark>)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compile(tt.pattern)
			require.Equal(t, KindSubstring, m.Kind())
			assert.True(t, m.MatchString(tt.text))
			assert.Equal(t, tt.want, Highlight(tt.text, m))
		})
	}
}
