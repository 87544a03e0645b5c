package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreFile is the name of the per-root ignore file read by Load
const GitignoreFile = ".gitignore"

// DefaultExcludes are dependency and build directories that are never worth
// scanning. Directory-only patterns without a slash match at any depth.
var DefaultExcludes = []string{
	".git/",
	".venv/",
	"venv/",
	"node_modules/",
	"dist/",
	"build/",
}

// Sources holds the raw ignore inputs, already read into memory
type Sources struct {
	RootGitignore string   // Contents of <root>/.gitignore ("" if absent)
	ExtraFiles    []string // Contents of each extra ignore file, in order
	Globs         []string // Ad-hoc patterns, one per entry
	NoDefaults    bool     // Leave out DefaultExcludes
}

// Spec is a compiled, read-only ignore matcher. It is safe for concurrent use.
// A nil *Spec ignores nothing.
type Spec struct {
	patterns []string
	matcher  gitignore.Matcher
}

// Build merges the sources in precedence order and compiles them.
// It returns nil when no pattern survives filtering.
func Build(src Sources) *Spec {
	var lines []string
	lines = append(lines, splitLines(src.RootGitignore)...)
	for _, text := range src.ExtraFiles {
		lines = append(lines, splitLines(text)...)
	}
	if !src.NoDefaults {
		lines = append(lines, DefaultExcludes...)
	}
	lines = append(lines, src.Globs...)

	patterns := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	if len(patterns) == 0 {
		return nil
	}

	compiled := make([]gitignore.Pattern, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, gitignore.ParsePattern(p, nil))
	}

	return &Spec{
		patterns: patterns,
		matcher:  gitignore.NewMatcher(compiled),
	}
}

// Load reads <root>/.gitignore when present plus every extra ignore file and
// builds the spec. An extra file that cannot be read is an error; a missing
// root .gitignore is not.
func Load(root string, extraFiles []string, globs []string, noDefaults bool) (*Spec, error) {
	src := Sources{Globs: globs, NoDefaults: noDefaults}

	data, err := os.ReadFile(filepath.Join(root, GitignoreFile))
	if err == nil {
		src.RootGitignore = string(data)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", GitignoreFile, err)
	}

	for _, path := range extraFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
		}
		src.ExtraFiles = append(src.ExtraFiles, string(data))
	}

	return Build(src), nil
}

// Patterns returns the merged pattern lines in precedence order
func (s *Spec) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Matches reports whether the file at path, evaluated relative to root, is
// ignored. Paths outside root are never ignored.
func Matches(spec *Spec, path, root string) bool {
	if spec == nil {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	return spec.matcher.Match(strings.Split(rel, "/"), false)
}

// splitLines splits file contents on newlines; CR is stripped by Build
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
