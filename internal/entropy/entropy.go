// Package entropy flags high-entropy tokens on a line of text.
//
// Scoring every substring of a line would cost O(n²) per line, so candidates
// are first extracted with a single shape regex: maximal runs of base64/url
// token characters of length 20 or more, or hex runs of length 32 or more.
// Only those candidates are scored with Shannon entropy.
package entropy

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultThreshold is the default minimum entropy in bits per character
const DefaultThreshold = 4.0

// candidatePattern matches secret-shaped tokens. Leftmost-first alternation
// with greedy repetition yields maximal runs.
var candidatePattern = regexp.MustCompile(`[A-Za-z0-9\-_/+=]{20,}|[0-9a-fA-F]{32,}`)

// CandidatePattern returns the source of the candidate token expression
func CandidatePattern() string {
	return candidatePattern.String()
}

// Candidate is a token extracted from a line
type Candidate struct {
	Text  string
	Start int
	End   int
}

// Candidates returns the secret-shaped tokens of line, left to right
func Candidates(line string) []Candidate {
	locs := candidatePattern.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Candidate, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Candidate{Text: line[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}
	return out
}

// Shannon computes -Σ p(c)·log2 p(c) over the characters of s.
// The empty string has entropy 0.
func Shannon(s string) float64 {
	if s == "" {
		return 0
	}

	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}

	var h float64
	n := float64(total)
	for _, count := range freq {
		p := float64(count) / n
		h -= p * math.Log2(p)
	}
	return h
}

// Hit is a candidate whose entropy reached the threshold
type Hit struct {
	Text    string
	Entropy float64
}

// Detector scores candidates against a fixed threshold. It holds no mutable
// state and is safe for concurrent use.
type Detector struct {
	Threshold float64
	rule      string
}

// New creates a Detector for the given threshold
func New(threshold float64) *Detector {
	return &Detector{
		Threshold: threshold,
		rule:      RuleName(threshold),
	}
}

// Rule returns the rule label reported for hits, e.g. "HighEntropy(>= 4.0)"
func (d *Detector) Rule() string {
	return d.rule
}

// Detect returns the high-entropy candidates of line in left-to-right order.
// Candidates overlapping any of the exclude spans (byte ranges already
// reported by signature rules) are not scored.
func (d *Detector) Detect(line string, exclude [][2]int) []Hit {
	var hits []Hit
	for _, c := range Candidates(line) {
		if overlaps(c.Start, c.End, exclude) {
			continue
		}
		if h := Shannon(c.Text); h >= d.Threshold {
			hits = append(hits, Hit{Text: c.Text, Entropy: h})
		}
	}
	return hits
}

func overlaps(start, end int, spans [][2]int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}

// RuleName formats the entropy rule label. The threshold always carries at
// least one decimal place so 4 prints as "4.0".
func RuleName(threshold float64) string {
	s := strconv.FormatFloat(threshold, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return fmt.Sprintf("HighEntropy(>= %s)", s)
}
