package exchange

import (
	"bytes"
	"encoding/csv"
	"io"

	"fjacquet/finance-tracker/internal/models"

	"github.com/gocarina/gocsv"
)

func (c *Codec) decodeCSV(data []byte) (Document, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = c.delimiter
	reader.TrimLeadingSpace = true

	var records []record
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return Document{}, malformed(FormatCSV, -1, "invalid csv", err)
	}

	txns := make([]models.Transaction, 0, len(records))
	for i, r := range records {
		t, err := r.toTransaction(FormatCSV, i)
		if err != nil {
			return Document{}, err
		}
		txns = append(txns, t)
	}
	return Document{Transactions: txns}, nil
}

func (c *Codec) encodeCSV(w io.Writer, txns []models.Transaction) error {
	records := make([]record, 0, len(txns))
	for _, t := range txns {
		records = append(records, toRecord(t))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = c.delimiter
	return gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter))
}
