// Package store provides the persistence gateway between the ledger and the
// key-value substrate.
package store

import (
	"encoding/json"

	"fjacquet/finance-tracker/internal/apperror"
	"fjacquet/finance-tracker/internal/kvstore"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
)

// Keys under which the ledger state is persisted.
const (
	TransactionsKey = "sft_transactions_v1"
	SettingsKey     = "sft_settings_v1"
)

// Gateway loads and saves the transaction collection and the settings record.
// Load methods never fail: unreadable data degrades to the empty default.
type Gateway interface {
	Load() []models.Transaction
	Save(transactions []models.Transaction) error
	LoadSettings() models.Settings
	SaveSettings(settings models.Settings) error
}

// KVGateway persists ledger state as JSON documents in a kvstore.KV.
type KVGateway struct {
	kv       kvstore.KV
	logger   logging.Logger
	defaults models.Settings
}

// NewKVGateway creates a gateway over kv. defaults is returned by LoadSettings
// when nothing usable is stored.
func NewKVGateway(kv kvstore.KV, defaults models.Settings, logger logging.Logger) *KVGateway {
	if defaults.Currency == "" {
		defaults.Currency = models.DefaultCurrency
	}
	return &KVGateway{
		kv:       kv,
		logger:   logger.WithField(logging.FieldComponent, "store"),
		defaults: defaults,
	}
}

func (g *KVGateway) read(key string) (string, bool) {
	raw, ok, err := g.kv.Get(key)
	if err != nil {
		g.logger.WithError(err).Warn("Failed to read persisted data, using defaults",
			logging.F(logging.FieldKey, key))
		return "", false
	}
	return raw, ok
}

// Load returns the persisted collection, or an empty one when the data is
// missing or corrupt.
func (g *KVGateway) Load() []models.Transaction {
	raw, ok := g.read(TransactionsKey)
	if !ok {
		return []models.Transaction{}
	}

	var transactions []models.Transaction
	if err := json.Unmarshal([]byte(raw), &transactions); err != nil {
		g.logger.WithError(err).Warn("Persisted transactions are corrupt, starting empty",
			logging.F(logging.FieldKey, TransactionsKey))
		return []models.Transaction{}
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	g.logger.Debug("Loaded transactions", logging.F(logging.FieldCount, len(transactions)))
	return transactions
}

// Save overwrites the persisted collection.
func (g *KVGateway) Save(transactions []models.Transaction) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return g.write(TransactionsKey, transactions)
}

// LoadSettings returns the persisted settings merged over the defaults.
func (g *KVGateway) LoadSettings() models.Settings {
	settings := g.defaults
	raw, ok := g.read(SettingsKey)
	if !ok {
		return settings
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		g.logger.WithError(err).Warn("Persisted settings are corrupt, using defaults",
			logging.F(logging.FieldKey, SettingsKey))
		return g.defaults
	}
	if settings.Currency == "" {
		settings.Currency = g.defaults.Currency
	}
	return settings
}

// SaveSettings overwrites the persisted settings.
func (g *KVGateway) SaveSettings(settings models.Settings) error {
	return g.write(SettingsKey, settings)
}

func (g *KVGateway) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &apperror.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := g.kv.Set(key, string(data)); err != nil {
		g.logger.WithError(err).Error("Failed to persist data", logging.F(logging.FieldKey, key))
		return &apperror.StorageError{Op: "set", Key: key, Err: err}
	}
	g.logger.Debug("Persisted data", logging.F(logging.FieldKey, key), logging.F("bytes", len(data)))
	return nil
}

var _ Gateway = (*KVGateway)(nil)
