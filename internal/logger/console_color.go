package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/secretscan/internal/models"
)

// colorScheme defines consistent colors for summary counters.
// Green: scanned files
// Red: failures and findings
// Yellow: skipped or capped files
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
}

// newColorScheme creates the standard color scheme for summary counters.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
	}
}

// formatStatsLine renders the counters of a scan on one line.
// Format: "files: N, ignored: N, scanned: N, skipped: N, failed: N, capped: N, findings: N"
// Nonzero failed/findings counts are red, skipped/capped yellow.
func formatStatsLine(stats models.ScanStats, scheme *colorScheme, useColor bool) string {
	type counter struct {
		label string
		value int
		tint  *color.Color
	}

	counters := []counter{
		{"files", stats.Discovered, nil},
		{"ignored", stats.Ignored, nil},
		{"scanned", stats.Scanned, scheme.success},
		{"skipped", stats.Skipped, scheme.warn},
		{"failed", stats.Failed, scheme.fail},
		{"capped", stats.Capped, scheme.warn},
		{"findings", stats.Findings, scheme.fail},
	}

	parts := make([]string, 0, len(counters))
	for _, c := range counters {
		if !useColor {
			parts = append(parts, fmt.Sprintf("%s: %d", c.label, c.value))
			continue
		}
		value := fmt.Sprintf("%d", c.value)
		if c.tint != nil && (c.value > 0 || c.tint == scheme.success) {
			value = c.tint.Sprint(value)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.label.Sprint(c.label), value))
	}

	return strings.Join(parts, ", ")
}
