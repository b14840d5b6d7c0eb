package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"budgetbook/internal/config"
	"budgetbook/internal/logging"
	"budgetbook/internal/service"
	"budgetbook/internal/store"
	"budgetbook/internal/tui"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	DataPath   string
	LogLevel   string
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. With no subcommand it starts the
// interactive tracker.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "budgetbook",
		Short: "budgetbook - personal budget and expense tracker",
		Long:  "A single-user terminal tracker for budgets, categories and expenses.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, sess, err := opts.bootstrap()
			if err != nil {
				return err
			}
			program := tea.NewProgram(tui.New(svc, sess, tui.WithCurrency(cfg.Currency)))
			if _, err := program.Run(); err != nil {
				return WrapExitError(ExitCommandError, "terminal session failed", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "config file location")
	cmd.PersistentFlags().StringVar(&opts.DataPath, "data", "", "data file location (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

// bootstrap loads the configuration, installs logging and opens the store.
func (o *RootOptions) bootstrap() (config.Config, *service.Services, *service.Session, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, nil, nil, WrapExitError(ExitCommandError, "load configuration", err)
	}
	if o.DataPath != "" {
		cfg.DataPath = o.DataPath
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return config.Config{}, nil, nil, WrapExitError(ExitCommandError, "invalid log level", err)
	}
	logging.Setup(level)

	st, err := store.Open(cfg.DataPath, nil)
	if err != nil {
		return config.Config{}, nil, nil, WrapExitError(ExitCommandError, "open data file", err)
	}
	return cfg, service.New(st), service.NewSession(), nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
