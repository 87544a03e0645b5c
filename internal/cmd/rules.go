package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/harrison/secretscan/internal/entropy"
	"github.com/harrison/secretscan/internal/pattern"
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command, which lists the detection rules
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in detection rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(cmd.OutOrStdout())
		},
	}
}

func listRules(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tPATTERN")
	for _, r := range pattern.Rules() {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Pattern.String())
	}
	fmt.Fprintf(tw, "%s\tShannon entropy of tokens matching %s\n", entropy.RuleName(entropy.DefaultThreshold), entropy.CandidatePattern())
	return tw.Flush()
}
