package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harrison/secretscan/internal/config"
	"github.com/harrison/secretscan/internal/display"
	"github.com/harrison/secretscan/internal/ignore"
	"github.com/harrison/secretscan/internal/logger"
	"github.com/harrison/secretscan/internal/models"
	"github.com/harrison/secretscan/internal/report"
	"github.com/harrison/secretscan/internal/scanner"
	"github.com/spf13/cobra"
)

// ErrFindingsDetected is returned by the scan command when --fail-on-findings
// is set and the scan produced at least one finding.
var ErrFindingsDetected = errors.New("findings detected")

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file-or-directory>",
		Short: "Scan a file or directory for secrets",
		Long: `Scan a file or directory for secrets.

Every regular file under the target is checked unless it is matched by the
target's .gitignore, an --ignore-file, an --exclude pattern or the built-in
excludes (.git/, .venv/, venv/, node_modules/, dist/, build/). Files with a
binary extension, binary content or more than --max-file-size bytes are
skipped.

Findings are printed one per line as "path:line: rule -> match", or as a JSON
document with --json. Log output goes to stderr.

Configuration is loaded from .secretscan.yaml in the target directory or its
nearest parent up to the repository root, or from --config / $SECRETSCAN_CONFIG.
CLI flags override configuration file settings.

Examples:
  secretscan scan .
  secretscan scan --json --output-file reports/secrets.json src/
  secretscan scan --fail-on-findings --exclude '*.lock' --exclude testdata/ .
  secretscan scan --no-entropy config/production.env`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().Bool("json", false, "Output results as JSON")
	cmd.Flags().Bool("fail-on-findings", false, "Return non-zero exit code if findings exist")
	cmd.Flags().Int64("max-file-size", models.DefaultMaxFileSizeBytes, "Max bytes to scan per file")
	cmd.Flags().Float64("entropy-threshold", models.DefaultEntropyThreshold, "Shannon entropy threshold")
	cmd.Flags().Bool("no-entropy", false, "Disable entropy-based detection")
	cmd.Flags().StringArray("exclude", nil, "Extra exclude glob(s), in addition to .gitignore (repeatable)")
	cmd.Flags().StringArray("ignore-file", nil, "Additional ignore files in gitignore syntax (repeatable)")
	cmd.Flags().String("output-file", "", "Write output to file instead of stdout")
	cmd.Flags().Int("max-workers", 0, "Number of files scanned in parallel (0 = auto)")
	cmd.Flags().Int("max-findings-per-file", models.DefaultMaxFindingsPerFile, "Stop reporting a file after this many findings")
	cmd.Flags().Bool("no-default-excludes", false, "Do not apply the built-in excludes")
	cmd.Flags().String("config", "", "Path to config file (default: nearest .secretscan.yaml)")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error (default: info)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

// runScan implements the scan command logic
func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	cfg, err := loadScanConfig(cmd, target)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	root := target
	if !info.IsDir() {
		root = filepath.Dir(target)
	}
	spec, err := ignore.Load(root, cfg.IgnoreFiles, cfg.Exclude, cfg.NoDefaultExcludes)
	if err != nil {
		return fmt.Errorf("failed to load ignore rules: %w", err)
	}
	log.LogDebug(fmt.Sprintf("%d ignore patterns active", len(spec.Patterns())))

	runID := uuid.NewString()
	log.LogScanStart(runID, target)
	start := time.Now()

	findings, stats, err := scanner.ScanWithStats(cmd.Context(), target, spec, cfg.ScanConfig(), scanner.WithLogger(log))
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	log.LogScanSummary(runID, stats, time.Since(start))

	if err := writeFindings(cmd, findings); err != nil {
		return err
	}

	if len(findings) > 0 {
		if stderr, ok := cmd.ErrOrStderr().(*os.File); ok && report.IsTerminal(stderr) {
			display.FindingsWarning(findings).Display(stderr, report.ColorEnabled(stderr))
		}
	}

	if failOnFindings, _ := cmd.Flags().GetBool("fail-on-findings"); failOnFindings && len(findings) > 0 {
		return ErrFindingsDetected
	}
	return nil
}

// loadScanConfig loads the config file for target and applies the flags that
// were set explicitly.
func loadScanConfig(cmd *cobra.Command, target string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	} else {
		configPath = config.FindConfigFile(target)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	var overrides config.FlagOverrides

	if flags.Changed("max-file-size") {
		v, _ := flags.GetInt64("max-file-size")
		overrides.MaxFileSize = &v
	}
	if flags.Changed("entropy-threshold") {
		v, _ := flags.GetFloat64("entropy-threshold")
		overrides.EntropyThreshold = &v
	}
	if flags.Changed("no-entropy") {
		v, _ := flags.GetBool("no-entropy")
		overrides.NoEntropy = &v
	}
	if flags.Changed("max-workers") {
		v, _ := flags.GetInt("max-workers")
		overrides.MaxWorkers = &v
	}
	if flags.Changed("max-findings-per-file") {
		v, _ := flags.GetInt("max-findings-per-file")
		overrides.MaxFindingsPerFile = &v
	}
	if flags.Changed("no-default-excludes") {
		v, _ := flags.GetBool("no-default-excludes")
		overrides.NoDefaultExcludes = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	overrides.Exclude, _ = flags.GetStringArray("exclude")
	overrides.IgnoreFiles, _ = flags.GetStringArray("ignore-file")

	cfg.MergeWithFlags(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// writeFindings renders findings and sends them to --output-file or stdout
func writeFindings(cmd *cobra.Command, findings []models.Finding) error {
	format := report.FormatText
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		format = report.FormatJSON
	}
	outputFile, _ := cmd.Flags().GetString("output-file")

	useColor := false
	if outputFile == "" {
		if stdout, ok := cmd.OutOrStdout().(*os.File); ok {
			useColor = report.ColorEnabled(stdout)
		}
	}

	output, err := report.Render(findings, format, useColor)
	if err != nil {
		return err
	}

	if outputFile != "" {
		return report.WriteFile(cmd.Context(), outputFile, output)
	}
	return report.WriteOutput(cmd.OutOrStdout(), output)
}
