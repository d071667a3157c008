// Package exchange encodes and decodes bulk import/export documents.
//
// A document is either a bare sequence of transactions or a wrapper object
// carrying the transactions together with the settings record. JSON and YAML
// support both shapes; CSV carries transactions only.
package exchange

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/finance-tracker/internal/apperror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ErrSettingsUnsupported is returned when settings are encoded into a format
// that cannot carry them.
var ErrSettingsUnsupported = errors.New("format cannot carry settings")

// Document is the unit of import and export.
type Document struct {
	Transactions []models.Transaction
	// Settings is nil when the document carries no settings record.
	Settings *models.Settings
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", name)
	}
}

// FormatFromPath guesses the format from a file extension, returning fallback
// when the extension is not recognised.
func FormatFromPath(path string, fallback Format) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return fallback
}

// Codec reads and writes documents.
type Codec struct {
	delimiter rune
	logger    logging.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithDelimiter sets the CSV field delimiter.
func WithDelimiter(r rune) Option {
	return func(c *Codec) {
		if r != 0 {
			c.delimiter = r
		}
	}
}

// NewCodec creates a Codec.
func NewCodec(logger logging.Logger, opts ...Option) *Codec {
	c := &Codec{
		delimiter: ',',
		logger:    logger.WithField(logging.FieldComponent, "exchange"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode reads a whole document from r. Shape problems are reported as
// *apperror.MalformedImportError.
func (c *Codec) Decode(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s document: %w", format, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, malformed(format, -1, "empty document", nil)
	}

	var doc Document
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatCSV:
		doc, err = c.decodeCSV(data)
	default:
		return Document{}, fmt.Errorf("unsupported format: %q", format)
	}
	if err != nil {
		c.logger.WithError(err).Warn("Rejected import document", logging.F(logging.FieldFormat, string(format)))
		return Document{}, err
	}

	c.logger.Debug("Decoded import document",
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, len(doc.Transactions)),
		logging.F("with_settings", doc.Settings != nil))
	return doc, nil
}

// Encode writes doc to w. JSON and YAML emit the bare sequence unless doc
// carries settings, in which case the wrapper object is written.
func (c *Codec) Encode(w io.Writer, format Format, doc Document) error {
	txns := doc.Transactions
	if txns == nil {
		txns = []models.Transaction{}
	}

	var err error
	switch format {
	case FormatJSON:
		err = encodeJSON(w, txns, doc.Settings)
	case FormatYAML:
		err = encodeYAML(w, txns, doc.Settings)
	case FormatCSV:
		if doc.Settings != nil {
			return fmt.Errorf("%s: %w", format, ErrSettingsUnsupported)
		}
		err = c.encodeCSV(w, txns)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", format, err)
	}

	c.logger.Debug("Encoded export document",
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, len(txns)))
	return nil
}

func malformed(format Format, row int, reason string, err error) error {
	return &apperror.MalformedImportError{Format: string(format), Row: row, Reason: reason, Err: err}
}
