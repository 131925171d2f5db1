package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/proars/domnix/internal/cli"
)

func main() {
	ctx := context.Background()

	if err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Handle signal cancellation
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd.ExecuteContext(ctx)
}
