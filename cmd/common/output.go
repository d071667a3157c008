// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"fjacquet/finance-tracker/internal/apperror"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/search"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

// TableOptions controls how a transaction table is rendered.
type TableOptions struct {
	Settings models.Settings
	// Matcher, when set, highlights matches in the description and category.
	Matcher search.Matcher
	Marker  search.Marker
}

// PrintTransactions renders transactions as an aligned table.
func PrintTransactions(w io.Writer, txns []models.Transaction, opts TableOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, t := range txns {
		desc, cat := t.Description, t.Category
		if opts.Matcher != nil {
			desc = search.HighlightWith(desc, opts.Matcher, opts.Marker)
			cat = search.HighlightWith(cat, opts.Matcher, opts.Marker)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Date, desc, cat, opts.Settings.FormatAmount(t.Amount))
	}
	return tw.Flush()
}

// PrintTransaction renders a single transaction as key/value lines.
func PrintTransaction(w io.Writer, t models.Transaction, settings models.Settings) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
	fmt.Fprintf(tw, "Description:\t%s\n", t.Description)
	fmt.Fprintf(tw, "Amount:\t%s\n", settings.FormatAmount(t.Amount))
	fmt.Fprintf(tw, "Category:\t%s\n", t.Category)
	fmt.Fprintf(tw, "Date:\t%s\n", t.Date)
	fmt.Fprintf(tw, "Updated:\t%s\n", t.UpdatedAt.Format("2006-01-02 15:04:05"))
	return tw.Flush()
}

// FormatError renders an error for the terminal. Validation failures are
// listed one field per line.
func FormatError(err error) string {
	var verr *apperror.ValidationError
	if !errors.As(err, &verr) {
		return "Error: " + err.Error()
	}

	names := make([]string, 0, len(verr.Fields))
	for name := range verr.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Error: invalid input")
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %s: %s", name, verr.Fields[name])
	}
	return b.String()
}

// OpenInput opens path for reading; "-" or "" selects in.
func OpenInput(path string, in io.Reader) (io.ReadCloser, error) {
	if path == "" || path == Stdio {
		return io.NopCloser(in), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	return f, nil
}
