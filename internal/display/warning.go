package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/secretscan/internal/models"
)

// maxListedFiles bounds the affected-file list of a findings warning
const maxListedFiles = 10

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when useColor is set
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	if useColor {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if useColor {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// FindingsWarning summarizes findings per file, in first-seen order. At most
// maxListedFiles files are listed; the rest are counted in the message.
func FindingsWarning(findings []models.Finding) Warning {
	seen := make(map[string]bool)
	var files []string
	for _, f := range findings {
		if !seen[f.Path] {
			seen[f.Path] = true
			files = append(files, f.Path)
		}
	}

	w := Warning{
		Title:      fmt.Sprintf("%d potential %s found in %d %s", len(findings), plural(len(findings), "secret", "secrets"), len(files), plural(len(files), "file", "files")),
		Suggestion: "Rotate any real credentials and remove them from history, or add false positives to an ignore file",
	}
	if len(files) > maxListedFiles {
		w.Message = fmt.Sprintf("Showing the first %d of %d files", maxListedFiles, len(files))
		files = files[:maxListedFiles]
	}
	w.Files = files
	return w
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
