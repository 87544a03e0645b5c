package models

import "fmt"

// Finding is one potential secret occurrence reported by the scan engine
type Finding struct {
	Path  string `json:"path"`  // Slash-separated path relative to the scan root
	Line  int    `json:"line"`  // 1-based line number
	Rule  string `json:"rule"`  // Rule name, or HighEntropy(>= N) for entropy hits
	Match string `json:"match"` // Matched text (capture group when the rule selects one)
}

// String renders the finding the way the text report prints it:
// "path:line: rule -> match"
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s -> %s", f.Path, f.Line, f.Rule, f.Match)
}
