package pattern

// Match is a single rule hit on a line
type Match struct {
	Rule  string // Rule name
	Text  string // Reported text (whole match or the selected capture group)
	Start int    // Byte offset of the whole match
	End   int    // Byte offset just past the whole match
}

// Span returns the byte range covered by the whole match
func (m Match) Span() [2]int {
	return [2]int{m.Start, m.End}
}

// MatchLine runs every rule over line, in table order, and returns one Match
// per non-overlapping occurrence.
func MatchLine(line string) []Match {
	return matchRules(rules, line)
}

func matchRules(table []Rule, line string) []Match {
	var matches []Match
	for _, r := range table {
		for _, loc := range r.Pattern.FindAllStringSubmatchIndex(line, -1) {
			text := line[loc[0]:loc[1]]
			if g := r.CaptureGroup; g > 0 && 2*g+1 < len(loc) {
				if loc[2*g] < 0 {
					// optional group did not participate
					text = ""
				} else {
					text = line[loc[2*g]:loc[2*g+1]]
				}
			}
			matches = append(matches, Match{
				Rule:  r.Name,
				Text:  text,
				Start: loc[0],
				End:   loc[1],
			})
		}
	}
	return matches
}
