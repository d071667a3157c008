package exchange

import (
	"bytes"
	"encoding/json"
	"io"

	"fjacquet/finance-tracker/internal/models"
)

// wrapper is the object form of a document. Tx is the key older exports used.
type wrapper struct {
	Transactions []json.RawMessage `json:"transactions,omitempty"`
	Tx           []json.RawMessage `json:"tx,omitempty"`
	Settings     *models.Settings  `json:"settings,omitempty"`
}

type exportWrapper struct {
	Transactions []models.Transaction `json:"transactions"`
	Settings     *models.Settings     `json:"settings"`
}

var jsonNull = []byte("null")

func decodeJSON(data []byte) (Document, error) {
	data = bytes.TrimSpace(data)

	var raw []json.RawMessage
	var settings *models.Settings
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &raw); err != nil {
			return Document{}, malformed(FormatJSON, -1, "invalid transaction list", err)
		}
	case '{':
		var w wrapper
		if err := json.Unmarshal(data, &w); err != nil {
			return Document{}, malformed(FormatJSON, -1, "invalid wrapper object", err)
		}
		switch {
		case w.Transactions != nil:
			raw = w.Transactions
		case w.Tx != nil:
			raw = w.Tx
		default:
			return Document{}, malformed(FormatJSON, -1, "wrapper has no transactions field", nil)
		}
		settings = w.Settings
	default:
		return Document{}, malformed(FormatJSON, -1, "expected a list or an object", nil)
	}

	txns := make([]models.Transaction, 0, len(raw))
	for i, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), jsonNull) {
			return Document{}, malformed(FormatJSON, i, "record is null", nil)
		}
		var t models.Transaction
		if err := json.Unmarshal(item, &t); err != nil {
			return Document{}, malformed(FormatJSON, i, "invalid record", err)
		}
		txns = append(txns, t)
	}
	return Document{Transactions: txns, Settings: settings}, nil
}

func encodeJSON(w io.Writer, txns []models.Transaction, settings *models.Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if settings == nil {
		return enc.Encode(txns)
	}
	return enc.Encode(exportWrapper{Transactions: txns, Settings: settings})
}
