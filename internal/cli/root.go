// Package cli provides the Cobra command tree and output wiring for domnix.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/proars/domnix/internal/config"
	"github.com/proars/domnix/internal/output"
)

// NewRootCmd builds the top-level Cobra command for domnix.
// Callers must set stdin/stdout/stderr via cmd.SetIn / SetOut / SetErr before
// Execute.
func NewRootCmd() *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	var d deps

	cmd := &cobra.Command{
		Use:   "domnix",
		Short: "domnix — bulk domain-availability checks over WHOIS",
		Long: `Domnix checks domain registration status in bulk by querying WHOIS servers
directly over the WHOIS protocol (TCP port 43).

The WHOIS server for each TLD is resolved through a built-in table with an
IANA root fallback, responses are classified into free / registered / unknown
/ error / invalid, and results are reported in input order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := buildDeps(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	_ = cmd.RegisterFlagCompletionFunc("output", config.CompleteOutputFormat)

	cmd.AddCommand(
		newCheckCmd(&d),
		newVersionCmd(),
		newCompletionCmd(),
	)

	return cmd
}

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
}

// buildDeps resolves config and logger, and validates the configuration.
func buildDeps(cmd *cobra.Command, stderr io.Writer) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("--workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("--timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.TLD == "" {
		return nil, fmt.Errorf("--tld must not be empty")
	}
	if !output.Valid(output.Format(cfg.Output)) {
		return nil, fmt.Errorf("invalid output format %q: must be \"text\", \"json\", or \"plain\"", cfg.Output)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return &deps{cfg: cfg, logger: logger}, nil
}
