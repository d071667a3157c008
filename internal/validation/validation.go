// Package validation checks user-entered transaction fields against the
// format rules of the ledger.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Field names used as keys in FieldErrors.
const (
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldCap         = "cap"
)

// Messages reported for each failed rule.
const (
	MsgEmptyOrPadded = "Invalid description"
	MsgDuplicateWord = "Duplicate words found"
	MsgBadAmount     = "Invalid amount"
	MsgBadCategory   = "Invalid category"
	MsgBadDate       = "Invalid date"
	MsgNegativeCap   = "Cap must be a non-negative number"
)

var (
	amountRe      = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	dateRe        = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	categoryRe    = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	wordRe        = regexp.MustCompile(`\w+`)
)

// FieldErrors maps a field name to its error message. An empty map means valid.
type FieldErrors map[string]string

// Valid reports whether no rule failed.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// ValidateTransaction runs every rule against c and returns all failures.
// A duplicated word takes precedence over padding on the description.
func ValidateTransaction(c models.Candidate) FieldErrors {
	errs := FieldErrors{}
	if isEmptyOrPadded(c.Description) {
		errs[FieldDescription] = MsgEmptyOrPadded
	}
	if !amountRe.MatchString(c.Amount) {
		errs[FieldAmount] = MsgBadAmount
	}
	if !dateRe.MatchString(c.Date) {
		errs[FieldDate] = MsgBadDate
	}
	if !categoryRe.MatchString(c.Category) {
		errs[FieldCategory] = MsgBadCategory
	}
	if HasDuplicateWord(c.Description) {
		errs[FieldDescription] = MsgDuplicateWord
	}
	return errs
}

// isEmptyOrPadded counts any Unicode space as padding, not only ASCII.
func isEmptyOrPadded(s string) bool {
	return s == "" || strings.TrimFunc(s, unicode.IsSpace) != s
}

// ValidateSettings checks a settings update.
func ValidateSettings(s models.Settings) FieldErrors {
	errs := FieldErrors{}
	if s.Cap.LessThan(decimal.Zero) {
		errs[FieldCap] = MsgNegativeCap
	}
	return errs
}

// HasDuplicateWord reports whether s contains a word immediately repeated,
// ignoring case, with only whitespace between the two occurrences
// ("the the cat"). Words are runs of ASCII letters, digits and underscores.
func HasDuplicateWord(s string) bool {
	spans := wordRe.FindAllStringIndex(s, -1)
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		gap := s[prev[1]:cur[0]]
		if gap == "" || strings.TrimFunc(gap, unicode.IsSpace) != "" {
			continue
		}
		if strings.EqualFold(s[prev[0]:prev[1]], s[cur[0]:cur[1]]) {
			return true
		}
	}
	return false
}
