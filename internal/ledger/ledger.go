// Package ledger owns the in-memory transaction collection and settings, and
// applies every mutation through validation and the persistence gateway.
//
// A Ledger is not safe for concurrent use. Each operation runs to completion
// and either applies and persists the whole mutation or leaves state unchanged.
package ledger

import (
	"strings"
	"time"

	"fjacquet/finance-tracker/internal/apperror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/store"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IDPrefix is prepended to every generated transaction id.
const IDPrefix = "txn_"

// Ledger is the transaction store.
type Ledger struct {
	gateway store.Gateway
	logger  logging.Logger

	now             func() time.Time
	newID           func() string
	strictImport    bool
	defaultCurrency string

	transactions []models.Transaction
	settings     models.Settings
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithIDGenerator overrides the transaction id generator.
func WithIDGenerator(gen func() string) Option {
	return func(l *Ledger) {
		if gen != nil {
			l.newID = gen
		}
	}
}

// WithStrictImport makes ImportBulk validate every record.
func WithStrictImport(strict bool) Option {
	return func(l *Ledger) { l.strictImport = strict }
}

// WithDefaultCurrency sets the currency used when settings carry none.
func WithDefaultCurrency(code string) Option {
	return func(l *Ledger) {
		if code = strings.TrimSpace(code); code != "" {
			l.defaultCurrency = code
		}
	}
}

// NewID returns a fresh random transaction id.
func NewID() string {
	return IDPrefix + uuid.NewString()
}

// New creates a Ledger and loads its state from the gateway.
func New(gateway store.Gateway, logger logging.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		gateway:         gateway,
		logger:          logger.WithField(logging.FieldComponent, "ledger"),
		now:             time.Now,
		newID:           NewID,
		defaultCurrency: models.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.transactions = gateway.Load()
	if l.transactions == nil {
		l.transactions = []models.Transaction{}
	}
	l.settings = gateway.LoadSettings()
	if l.settings.Currency == "" {
		l.settings.Currency = l.defaultCurrency
	}

	l.logger.Debug("Ledger loaded",
		logging.F(logging.FieldCount, len(l.transactions)),
		logging.F("currency", l.settings.Currency))
	return l
}

// Add validates the candidate and stores it as a new transaction.
func (l *Ledger) Add(c models.Candidate) (models.Transaction, error) {
	if errs := validation.ValidateTransaction(c); !errs.Valid() {
		l.logger.Debug("Rejected candidate", logging.F(logging.FieldOperation, logging.OpAdd),
			logging.F(logging.FieldReason, errs))
		return models.Transaction{}, &apperror.ValidationError{Fields: errs}
	}

	now := l.now()
	txn := models.Transaction{
		ID:          l.uniqueID(l.idSet()),
		Description: c.Description,
		Amount:      decimal.RequireFromString(c.Amount),
		Category:    c.Category,
		Date:        c.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	prev := l.transactions
	l.transactions = append(models.CloneTransactions(prev), txn)
	if err := l.persist(); err != nil {
		l.transactions = prev
		return models.Transaction{}, err
	}

	l.logger.Info("Transaction added",
		logging.F(logging.FieldOperation, logging.OpAdd),
		logging.F(logging.FieldTransactionID, txn.ID),
		logging.F(logging.FieldCategory, txn.Category),
		logging.F(logging.FieldAmount, txn.AmountText()))
	return txn, nil
}

// Edit merges patch over the transaction with the given id, re-validates the
// result and stores it. UpdatedAt never moves backwards.
func (l *Ledger) Edit(id string, patch models.Patch) (models.Transaction, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return models.Transaction{}, &apperror.NotFoundError{ID: id}
	}

	orig := l.transactions[idx]
	merged := patch.Apply(models.CandidateFrom(orig))
	if errs := validation.ValidateTransaction(merged); !errs.Valid() {
		return models.Transaction{}, &apperror.ValidationError{Fields: errs}
	}

	updated := orig
	updated.Description = merged.Description
	updated.Amount = decimal.RequireFromString(merged.Amount)
	updated.Category = merged.Category
	updated.Date = merged.Date
	updated.UpdatedAt = l.now()
	if updated.UpdatedAt.Before(orig.UpdatedAt) {
		updated.UpdatedAt = orig.UpdatedAt
	}

	prev := l.transactions
	next := models.CloneTransactions(prev)
	next[idx] = updated
	l.transactions = next
	if err := l.persist(); err != nil {
		l.transactions = prev
		return models.Transaction{}, err
	}

	l.logger.Info("Transaction edited",
		logging.F(logging.FieldOperation, logging.OpEdit),
		logging.F(logging.FieldTransactionID, id))
	return updated, nil
}

// Delete removes the transaction with the given id. Deleting an unknown id is
// not an error; the collection is persisted either way. The boolean reports
// whether a record was removed.
func (l *Ledger) Delete(id string) (bool, error) {
	prev := l.transactions
	next := make([]models.Transaction, 0, len(prev))
	for _, t := range prev {
		if t.ID != id {
			next = append(next, t)
		}
	}
	removed := len(next) != len(prev)

	l.transactions = next
	if err := l.persist(); err != nil {
		l.transactions = prev
		return false, err
	}

	l.logger.Info("Transaction delete applied",
		logging.F(logging.FieldOperation, logging.OpDelete),
		logging.F(logging.FieldTransactionID, id),
		logging.F("removed", removed))
	return removed, nil
}

// ImportBulk appends records to the collection and persists once. Records
// without an id, or whose id is already taken, get a fresh one. Missing
// timestamps are set to the import time. Records are only validated when the
// ledger was built WithStrictImport, in which case any invalid record rejects
// the whole batch.
func (l *Ledger) ImportBulk(records []models.Transaction) ([]models.Transaction, error) {
	if l.strictImport {
		for i, rec := range records {
			if errs := validation.ValidateTransaction(models.CandidateFrom(rec)); !errs.Valid() {
				return nil, &apperror.MalformedImportError{
					Format: "batch",
					Row:    i,
					Reason: "invalid record",
					Err:    &apperror.ValidationError{Fields: errs},
				}
			}
		}
	}

	now := l.now()
	seen := l.idSet()
	imported := make([]models.Transaction, 0, len(records))
	reassigned := 0
	for _, rec := range records {
		if rec.ID == "" || seen[rec.ID] {
			if rec.ID != "" {
				reassigned++
			}
			rec.ID = l.uniqueID(seen)
		}
		seen[rec.ID] = true
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = rec.CreatedAt
		}
		imported = append(imported, rec)
	}

	prev := l.transactions
	l.transactions = append(models.CloneTransactions(prev), imported...)
	if err := l.persist(); err != nil {
		l.transactions = prev
		return nil, err
	}

	l.logger.Info("Transactions imported",
		logging.F(logging.FieldOperation, logging.OpImport),
		logging.F(logging.FieldCount, len(imported)),
		logging.F("reassigned", reassigned))
	return models.CloneTransactions(imported), nil
}

// ExportAll returns a copy of the collection in insertion order.
func (l *Ledger) ExportAll() []models.Transaction {
	return models.CloneTransactions(l.transactions)
}

// Settings returns the current settings.
func (l *Ledger) Settings() models.Settings {
	return l.settings
}

// UpdateSettings replaces the settings wholesale. An empty currency falls back
// to the default code; a negative cap is rejected.
func (l *Ledger) UpdateSettings(s models.Settings) (models.Settings, error) {
	s, err := l.normalizeSettings(s)
	if err != nil {
		return l.settings, err
	}
	if err := l.persistSettings(s); err != nil {
		return l.settings, err
	}
	l.settings = s

	l.logger.Info("Settings updated",
		logging.F("cap", s.Cap.String()),
		logging.F("currency", s.Currency))
	return s, nil
}

// ImportDocument imports records and, when settings is non-nil, replaces the
// settings in the same step. The settings are checked before anything is
// written, and a failed settings write restores the previous collection.
func (l *Ledger) ImportDocument(records []models.Transaction, settings *models.Settings) ([]models.Transaction, error) {
	if settings == nil {
		return l.ImportBulk(records)
	}
	s, err := l.normalizeSettings(*settings)
	if err != nil {
		return nil, err
	}

	prev := l.transactions
	imported, err := l.ImportBulk(records)
	if err != nil {
		return nil, err
	}
	if err := l.persistSettings(s); err != nil {
		l.transactions = prev
		if rerr := l.persist(); rerr != nil {
			l.logger.WithError(rerr).Error("Failed to restore transactions after settings failure",
				logging.F(logging.FieldOperation, logging.OpImport))
		}
		return nil, err
	}
	l.settings = s

	l.logger.Info("Settings replaced by import",
		logging.F("cap", s.Cap.String()),
		logging.F("currency", s.Currency))
	return imported, nil
}

func (l *Ledger) normalizeSettings(s models.Settings) (models.Settings, error) {
	s.Currency = strings.TrimSpace(s.Currency)
	if s.Currency == "" {
		s.Currency = l.defaultCurrency
	}
	if errs := validation.ValidateSettings(s); !errs.Valid() {
		return models.Settings{}, &apperror.ValidationError{Fields: errs}
	}
	return s, nil
}

func (l *Ledger) persistSettings(s models.Settings) error {
	if err := l.gateway.SaveSettings(s); err != nil {
		l.logger.WithError(err).Error("Failed to persist settings",
			logging.F(logging.FieldOperation, logging.OpUpdateSettings))
		return wrapStorage("save", store.SettingsKey, err)
	}
	return nil
}

func (l *Ledger) persist() error {
	if err := l.gateway.Save(l.transactions); err != nil {
		l.logger.WithError(err).Error("Failed to persist transactions",
			logging.F(logging.FieldOperation, logging.OpSave))
		return wrapStorage("save", store.TransactionsKey, err)
	}
	return nil
}

func (l *Ledger) indexOf(id string) int {
	for i, t := range l.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) idSet() map[string]bool {
	ids := make(map[string]bool, len(l.transactions))
	for _, t := range l.transactions {
		ids[t.ID] = true
	}
	return ids
}

func (l *Ledger) uniqueID(taken map[string]bool) string {
	for {
		id := l.newID()
		if !taken[id] {
			return id
		}
	}
}
