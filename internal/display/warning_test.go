package display

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/harrison/secretscan/internal/models"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Configuration Missing"}.Display(&buf, true)

	output := buf.String()
	if !strings.Contains(output, "\x1b[33m") {
		t.Error("Expected yellow ANSI color code in output")
	}
	if !strings.Contains(output, "Warning: Configuration Missing") {
		t.Error("Expected title in output")
	}
	if !strings.HasSuffix(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code at the end")
	}
}

func TestDisplayWarning_NoColor(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Plain", Message: "details"}.Display(&buf, false)

	output := buf.String()
	if strings.Contains(output, "\x1b[") {
		t.Errorf("Expected no ANSI codes, got %q", output)
	}
	if output != "Warning: Plain\n    details\n" {
		t.Errorf("unexpected output %q", output)
	}
}

func TestDisplayWarning_AllFields(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Secrets",
		Message:    "msg",
		Files:      []string{"a.txt", "b/c.env"},
		Suggestion: "rotate",
	}.Display(&buf, false)

	want := "Warning: Secrets\n" +
		"    msg\n" +
		"    Affected files:\n" +
		"      1. a.txt\n" +
		"      2. b/c.env\n" +
		"    Suggestion:\n" +
		"    rotate\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestDisplayWarning_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "x", Files: []string{"only.txt"}}.Display(&buf, false)

	if !strings.Contains(buf.String(), "Affected file:\n") {
		t.Errorf("Expected singular label, got %q", buf.String())
	}
}

func TestFindingsWarning(t *testing.T) {
	findings := []models.Finding{
		{Path: "b.txt", Line: 1},
		{Path: "a.txt", Line: 3},
		{Path: "b.txt", Line: 9},
	}

	w := FindingsWarning(findings)
	if w.Title != "3 potential secrets found in 2 files" {
		t.Errorf("Title = %q", w.Title)
	}
	if strings.Join(w.Files, ",") != "b.txt,a.txt" {
		t.Errorf("Files = %v, want first-seen order", w.Files)
	}
	if w.Message != "" {
		t.Errorf("Message = %q, want empty", w.Message)
	}

	single := FindingsWarning(findings[:1])
	if single.Title != "1 potential secret found in 1 file" {
		t.Errorf("Title = %q", single.Title)
	}
}

func TestFindingsWarning_TruncatesFileList(t *testing.T) {
	var findings []models.Finding
	for i := 0; i < 15; i++ {
		findings = append(findings, models.Finding{Path: fmt.Sprintf("f%02d.txt", i), Line: 1})
	}

	w := FindingsWarning(findings)
	if len(w.Files) != maxListedFiles {
		t.Errorf("len(Files) = %d, want %d", len(w.Files), maxListedFiles)
	}
	if w.Message != "Showing the first 10 of 15 files" {
		t.Errorf("Message = %q", w.Message)
	}
}
