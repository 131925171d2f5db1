package config

import "github.com/spf13/cobra"

// CompleteOutputFormat provides shell completion candidates for the --output flag.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"text", "json", "plain"}, cobra.ShellCompDirectiveNoFileComp
}
