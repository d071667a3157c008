// Package containertest builds application containers for command tests.
package containertest

import (
	"testing"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/kvstore"
	"fjacquet/finance-tracker/internal/logging"
)

// New builds a container over the in-memory backend with a mock logger.
// Options are applied after those defaults. The container is closed when the
// test ends.
func New(tb testing.TB, opts ...container.Option) *container.Container {
	tb.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = kvstore.BackendMemory

	c, err := container.NewContainer(cfg, append([]container.Option{container.WithLogger(logging.NewMockLogger())}, opts...)...)
	if err != nil {
		tb.Fatalf("failed to build test container: %v", err)
	}
	tb.Cleanup(func() { _ = c.Close() })
	return c
}
