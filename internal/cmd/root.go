package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for secretscan
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secretscan",
		Short: "Find accidentally committed credentials in a source tree",
		Long: `secretscan walks a file or directory and reports lines that look like
credentials, combining signature rules (AWS keys, GitHub tokens, private key
headers, ...) with Shannon-entropy detection of random-looking tokens.

It honors .gitignore, skips binary and oversized files, and is meant to run
as a pre-commit hook or CI guardrail.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints errors, and stays quiet for ErrFindingsDetected
		SilenceErrors: true,
	}

	cmd.AddCommand(NewScanCommand())
	cmd.AddCommand(NewRulesCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
