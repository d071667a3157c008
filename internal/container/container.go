// Package container provides dependency injection for the sft application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"
	"time"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/exchange"
	"fjacquet/finance-tracker/internal/kvstore"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/report"
	"fjacquet/finance-tracker/internal/search"
	"fjacquet/finance-tracker/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	kv       kvstore.KV
	ledger   *ledger.Ledger
	codec    *exchange.Codec
	reporter *report.Generator
	marker   search.Marker
	now      func() time.Time
}

// Option adjusts how the container is built.
type Option func(*options)

type options struct {
	logger    logging.Logger
	logOutput io.Writer
	now       func() time.Time
	newID     func() string
}

// WithLogger supplies a ready-made logger instead of building one from config.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithLogOutput redirects the configured logger.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithClock overrides the clock used for timestamps and the trend window.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides transaction id generation.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) { o.newID = gen }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format, o.logOutput)
	}

	location, err := cfg.StorageLocation()
	if err != nil {
		return nil, err
	}
	kv, err := kvstore.Open(cfg.Storage.Backend, location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	logger.Debug("Storage opened",
		logging.F(logging.FieldBackend, cfg.Storage.Backend),
		logging.F(logging.FieldLocation, location))

	defaults := models.Settings{Cap: cfg.DefaultCap(), Currency: cfg.Defaults.Currency}
	gateway := store.NewKVGateway(kv, defaults, logger)

	ledgerOpts := []ledger.Option{
		ledger.WithClock(o.now),
		ledger.WithStrictImport(cfg.Import.Strict),
		ledger.WithDefaultCurrency(cfg.Defaults.Currency),
	}
	if o.newID != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithIDGenerator(o.newID))
	}
	l := ledger.New(gateway, logger, ledgerOpts...)

	return &Container{
		logger:   logger,
		config:   cfg,
		kv:       kv,
		ledger:   l,
		codec:    exchange.NewCodec(logger, exchange.WithDelimiter(cfg.Delimiter())),
		reporter: report.NewGenerator(logger),
		marker:   search.Marker{Open: cfg.Search.HighlightOpen, Close: cfg.Search.HighlightClose},
		now:      o.now,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLedger returns the transaction store.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetCodec returns the import/export codec.
func (c *Container) GetCodec() *exchange.Codec {
	return c.codec
}

// GetReporter returns the summary report generator.
func (c *Container) GetReporter() *report.Generator {
	return c.reporter
}

// GetMarker returns the highlight markers used when listing search results.
func (c *Container) GetMarker() search.Marker {
	return c.marker
}

// Now returns the current time according to the container's clock.
func (c *Container) Now() time.Time {
	return c.now()
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if err := c.kv.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
