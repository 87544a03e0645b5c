// Package report renders scan findings as text or JSON and delivers them to
// stdout or an output file.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/secretscan/internal/filelock"
	"github.com/harrison/secretscan/internal/models"
	"github.com/mattn/go-isatty"
)

// Format selects the output rendering
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// jsonReport is the JSON document shape: {"findings": [...]}
type jsonReport struct {
	Findings []models.Finding `json:"findings"`
}

// Render formats findings. Text output is one "path:line: rule -> match" line
// per finding joined by newlines, without a trailing newline; colored when
// useColor is set. JSON output is indented by two spaces and always carries a
// findings array, even when empty.
func Render(findings []models.Finding, format Format, useColor bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return renderJSON(findings)
	case FormatText, "":
		return []byte(renderText(findings, useColor)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func renderJSON(findings []models.Finding) ([]byte, error) {
	if findings == nil {
		findings = []models.Finding{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{Findings: findings}); err != nil {
		return nil, fmt.Errorf("failed to encode findings: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func renderText(findings []models.Finding, useColor bool) string {
	if !useColor {
		lines := make([]string, len(findings))
		for i, f := range findings {
			lines[i] = f.String()
		}
		return strings.Join(lines, "\n")
	}

	pathColor := color.New(color.FgCyan)
	ruleColor := color.New(color.FgYellow)
	matchColor := color.New(color.FgRed, color.Bold)
	// Colors are forced here; the caller already decided this is a terminal
	for _, c := range []*color.Color{pathColor, ruleColor, matchColor} {
		c.EnableColor()
	}

	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = fmt.Sprintf("%s:%s: %s -> %s",
			pathColor.Sprint(f.Path),
			strconv.Itoa(f.Line),
			ruleColor.Sprint(f.Rule),
			matchColor.Sprint(f.Match))
	}
	return strings.Join(lines, "\n")
}

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether text written to f should be colored: f is a
// terminal and color has not been disabled (NO_COLOR or --no-color).
func ColorEnabled(f *os.File) bool {
	return !color.NoColor && IsTerminal(f)
}

// WriteOutput writes rendered output to w followed by a newline.
func WriteOutput(w io.Writer, output []byte) error {
	if _, err := w.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteFile writes rendered output to path as-is, creating parent directories.
// The write is atomic and serialized with other secretscan runs through a
// lock file next to path.
func WriteFile(ctx context.Context, path string, output []byte) error {
	if err := filelock.LockAndWrite(ctx, path, output); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
