package scanner

import (
	"path/filepath"
	"strings"

	"github.com/harrison/secretscan/internal/classify"
	"github.com/harrison/secretscan/internal/entropy"
	"github.com/harrison/secretscan/internal/models"
	"github.com/harrison/secretscan/internal/pattern"
)

// fileOutcome is the result slot of one file task
type fileOutcome struct {
	findings []models.Finding
	skip     classify.SkipReason
	capped   bool
	err      error
}

// ScanFile scans a single file. Finding paths are reported relative to root.
// A binary or oversized file yields no findings and no error.
func ScanFile(path, root string, cfg models.ScanConfig) ([]models.Finding, error) {
	cfg = cfg.Normalized()
	var detector *entropy.Detector
	if cfg.EntropyEnabled {
		detector = entropy.New(cfg.EntropyThreshold)
	}
	out := scanFile(path, root, cfg, detector)
	return out.findings, out.err
}

func scanFile(path, root string, cfg models.ScanConfig, detector *entropy.Detector) fileOutcome {
	res, err := classify.Classify(path, cfg.MaxFileSizeBytes)
	if err != nil {
		return fileOutcome{err: err}
	}
	if res.Skipped() {
		return fileOutcome{skip: res.Skip}
	}

	findings, capped := scanLines(displayPath(path, root), res.Text, cfg.MaxFindingsPerFile, detector)
	return fileOutcome{findings: findings, capped: capped}
}

// scanLines runs signature rules and then entropy over every line. It stops
// as soon as limit findings have been collected.
func scanLines(relPath, text string, limit int, detector *entropy.Detector) ([]models.Finding, bool) {
	var findings []models.Finding

	for idx, line := range splitLines(text) {
		lineNo := idx + 1

		matches := pattern.MatchLine(line)
		spans := make([][2]int, 0, len(matches))
		for _, m := range matches {
			findings = append(findings, models.Finding{Path: relPath, Line: lineNo, Rule: m.Rule, Match: m.Text})
			if len(findings) >= limit {
				return findings, true
			}
			spans = append(spans, m.Span())
		}

		if detector == nil {
			continue
		}
		for _, hit := range detector.Detect(line, spans) {
			findings = append(findings, models.Finding{Path: relPath, Line: lineNo, Rule: detector.Rule(), Match: hit.Text})
			if len(findings) >= limit {
				return findings, true
			}
		}
	}

	return findings, false
}

// displayPath renders path relative to root with forward slashes
func displayPath(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// splitLines splits on \n, \r\n and lone \r. A trailing terminator does not
// produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
