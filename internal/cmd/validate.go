package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harrison/secretscan/internal/config"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a secretscan configuration file",
		Long: `Parse and validate a .secretscan.yaml file, checking for:
  - YAML syntax errors
  - Negative sizes, thresholds, worker counts or caps
  - Unknown log levels
  - ignore_files entries that cannot be read

Without an argument the file is located the same way "secretscan scan ."
would find it.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return validateConfigFile(path, cmd.OutOrStdout())
		},
	}

	return cmd
}

// validateConfigFile validates one config file and reports the outcome to output
func validateConfigFile(path string, output io.Writer) error {
	if path == "" {
		path = config.FindConfigFile(".")
		if path == "" {
			fmt.Fprintf(output, "No %s found; defaults apply\n", config.FileName)
			return nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(output, "Failed to read %s\n", path)
		return fmt.Errorf("config file %s: %w", path, err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(output, "Failed to parse %s\n", path)
		return err
	}

	var problems []string
	if err := cfg.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	for _, f := range cfg.IgnoreFiles {
		if _, err := os.ReadFile(f); err != nil {
			problems = append(problems, fmt.Sprintf("ignore file %s: %v", f, err))
		}
	}

	if len(problems) > 0 {
		fmt.Fprintf(output, "Validation failed for %s:\n", path)
		for _, p := range problems {
			fmt.Fprintf(output, "  - %s\n", p)
		}
		return fmt.Errorf("%s has %d problem(s): %s", path, len(problems), strings.Join(problems, "; "))
	}

	fmt.Fprintf(output, "Config is valid: %s\n", path)
	return nil
}
