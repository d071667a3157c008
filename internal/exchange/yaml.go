package exchange

import (
	"io"

	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type yamlWrapper struct {
	Transactions []record        `yaml:"transactions,omitempty"`
	Tx           []record        `yaml:"tx,omitempty"`
	Settings     *settingsRecord `yaml:"settings,omitempty"`
}

// yamlExport always carries the transactions key so an empty ledger
// still decodes as a wrapper.
type yamlExport struct {
	Transactions []record       `yaml:"transactions"`
	Settings     settingsRecord `yaml:"settings"`
}

func decodeYAML(data []byte) (Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Document{}, malformed(FormatYAML, -1, "invalid document", err)
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return Document{}, malformed(FormatYAML, -1, "empty document", nil)
	}

	var records []record
	var settings *models.Settings
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&records); err != nil {
			return Document{}, malformed(FormatYAML, -1, "invalid transaction list", err)
		}
	case yaml.MappingNode:
		var w yamlWrapper
		if err := root.Decode(&w); err != nil {
			return Document{}, malformed(FormatYAML, -1, "invalid wrapper object", err)
		}
		switch {
		case hasKey(root, "transactions"):
			records = w.Transactions
		case hasKey(root, "tx"):
			records = w.Tx
		default:
			return Document{}, malformed(FormatYAML, -1, "wrapper has no transactions field", nil)
		}
		if w.Settings != nil {
			s, err := w.Settings.toSettings()
			if err != nil {
				return Document{}, malformed(FormatYAML, -1, "invalid settings", err)
			}
			settings = &s
		}
	default:
		return Document{}, malformed(FormatYAML, -1, "expected a list or a mapping", nil)
	}

	txns := make([]models.Transaction, 0, len(records))
	for i, r := range records {
		t, err := r.toTransaction(FormatYAML, i)
		if err != nil {
			return Document{}, err
		}
		txns = append(txns, t)
	}
	return Document{Transactions: txns, Settings: settings}, nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

func (s settingsRecord) toSettings() (models.Settings, error) {
	out := models.Settings{Cap: decimal.Zero, Currency: s.Currency}
	if s.Cap == "" {
		return out, nil
	}
	c, err := decimal.NewFromString(s.Cap)
	if err != nil {
		return models.Settings{}, err
	}
	out.Cap = c
	return out, nil
}

func encodeYAML(w io.Writer, txns []models.Transaction, settings *models.Settings) error {
	records := make([]record, 0, len(txns))
	for _, t := range txns {
		records = append(records, toRecord(t))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	var err error
	if settings == nil {
		err = enc.Encode(records)
	} else {
		err = enc.Encode(yamlExport{
			Transactions: records,
			Settings:     settingsRecord{Cap: settings.Cap.String(), Currency: settings.Currency},
		})
	}
	if err != nil {
		return err
	}
	return enc.Close()
}
