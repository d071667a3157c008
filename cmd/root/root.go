// Package root contains the root command for the application
package root

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every subcommand.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Backend    string
}

type containerKey struct{}

type sessionKey struct{}

// session records the container opened by setup so ExecuteContext can close it.
type session struct {
	app *container.Container
}

// ErrNoContainer is returned when a command runs without an initialized container.
var ErrNoContainer = errors.New("application container not initialized")

var (
	// Flags holds the parsed persistent flags.
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sft",
		Short: "A simple finance tracker for recording and summarizing spending.",
		Long: `sft records spending transactions, searches them with regular expressions,
summarizes totals against a spending cap and imports or exports the ledger
as JSON, YAML or CSV.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default: $HOME/.sft/config.yaml)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format (text or json)")
	Cmd.PersistentFlags().StringVar(&Flags.Backend, "backend", "", "Storage backend (file, sqlite or memory)")
}

// ExecuteContext runs cmd and then closes the container opened for it. The
// container is closed on failure too, since cobra skips post-run hooks when a
// command returns an error.
func ExecuteContext(ctx context.Context, cmd *cobra.Command) error {
	s := &session{}
	err := cmd.ExecuteContext(context.WithValue(ctx, sessionKey{}, s))
	if s.app != nil {
		if cerr := s.app.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close storage: %w", cerr)
		}
	}
	return err
}

// WithContainer returns a context carrying the application container.
func WithContainer(ctx context.Context, c *container.Container) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}

// ContainerFrom returns the container attached to the command's context.
func ContainerFrom(cmd *cobra.Command) (*container.Container, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, ErrNoContainer
	}
	c, ok := ctx.Value(containerKey{}).(*container.Container)
	if !ok || c == nil {
		return nil, ErrNoContainer
	}
	return c, nil
}

// LoadConfig loads configuration and applies the persistent flag overrides.
func LoadConfig(flags GlobalFlags) (*config.Config, error) {
	if _, err := config.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.InitializeConfig(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.Backend != "" {
		cfg.Storage.Backend = flags.Backend
	}
	return cfg, nil
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := ContainerFrom(cmd); err == nil {
		return nil
	}

	cfg, err := LoadConfig(Flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cfg, container.WithLogOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	c.GetLogger().Debug("Command starting", logging.F("command", cmd.CommandPath()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if s, ok := ctx.Value(sessionKey{}).(*session); ok {
		s.app = c
	}
	cmd.SetContext(WithContainer(ctx, c))
	return nil
}
