// Package report renders dashboard summaries for the command line.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"fjacquet/finance-tracker/internal/aggregate"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Generator renders a Summary in text, JSON or YAML.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{
		logger: logger.WithField(logging.FieldComponent, "report"),
	}
}

// Generate renders the summary in the requested format.
func (g *Generator) Generate(s aggregate.Summary, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return g.generateText(s)
	case FormatJSON:
		return g.generateJSON(s)
	case FormatYAML:
		return g.generateYAML(s)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(s aggregate.Summary) ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(s aggregate.Summary) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateText(s aggregate.Summary) ([]byte, error) {
	money := models.Settings{Currency: s.Currency}.FormatAmount

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Transactions:\t%d\n", s.Count)
	fmt.Fprintf(w, "Total:\t%s\n", money(s.Total))
	fmt.Fprintf(w, "Top category:\t%s\n", s.TopCategory)
	fmt.Fprintf(w, "Cap:\t%s\n", money(s.Cap))
	remaining := money(s.CapRemaining)
	if s.OverCap() {
		remaining += " (over cap)"
	}
	fmt.Fprintf(w, "Cap remaining:\t%s\n", remaining)

	if len(s.Trend) > 0 {
		fmt.Fprintf(w, "\nLast %d days\t\n", len(s.Trend))
		for _, day := range s.Trend {
			fmt.Fprintf(w, "  %s\t%s\n", dateutils.ShortLabel(day.Date), money(day.Total))
		}
	}

	if len(s.Categories) > 0 {
		fmt.Fprintf(w, "\nCategories\t\t\n")
		for _, c := range s.Categories {
			fmt.Fprintf(w, "  %s\t%d\t%s\n", c.Category, c.Count, money(c.Total))
		}
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}
