package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proars/domnix/internal/checker"
	"github.com/proars/domnix/internal/input"
	"github.com/proars/domnix/internal/output"
	"github.com/proars/domnix/internal/whois"
)

func newCheckCmd(d *deps) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check registration status for a list of domains",
		Long: `Check domain availability over WHOIS for every domain in the input.

The input file holds one domain per line or a comma-separated list; blank
lines and lines starting with '#' are ignored. With no file argument (or with
"-") domains are read from stdin. Names without an extension get the default
TLD appended (--tld).

Each domain is checked once, concurrently (--workers), with a per-query
timeout (--timeout). Results keep input order and report one of: free,
registered, unknown, error, invalid.`,
		Example: `  # Check a file of domains
  domnix check domains.txt

  # Pipe from stdin, write a CSV alongside the console table
  cat domains.txt | domnix check --out results.csv

  # Bare names get .io appended, 25 workers, 3s timeout
  domnix check --tld io --workers 25 --timeout 3s ideas.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := resolveTokens(cmd, args)
			if err != nil {
				return err
			}
			if len(tokens) == 0 {
				return fmt.Errorf("no domains to check")
			}

			client := whois.NewClient(d.cfg.Timeout, d.logger)
			registry := whois.NewRegistry(client, d.logger)
			svc := checker.NewService(registry, client, d.cfg.TLD, d.logger)

			d.logger.Debug("starting bulk check",
				"domains", len(tokens), "workers", d.cfg.Workers, "timeout", d.cfg.Timeout)
			results := svc.CheckAll(cmd.Context(), tokens, d.cfg.Workers)

			if outFile != "" {
				if err := writeCSVFile(outFile, results); err != nil {
					return fmt.Errorf("writing CSV: %w", err)
				}
				d.logger.Info("results saved", "path", outFile)
			}

			return output.Write(cmd.OutOrStdout(), output.Format(d.cfg.Output), results)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "write results to a CSV file in addition to stdout")
	return cmd
}

// resolveTokens reads domain tokens from the file argument, or from stdin
// when no argument (or "-") is given.
func resolveTokens(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 1 && args[0] != "-" {
		return input.ReadFile(args[0])
	}
	return input.Read(cmd.InOrStdin())
}

// writeCSVFile writes the bulk results to path as CSV.
func writeCSVFile(path string, results *checker.MultiResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := results.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
