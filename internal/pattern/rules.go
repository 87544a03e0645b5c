// Package pattern holds the static table of credential signatures and matches
// it against single lines of text.
package pattern

import "regexp"

// Rule is a named credential signature
type Rule struct {
	Name         string
	Pattern      *regexp.Regexp
	CaptureGroup int // 0 reports the whole match, otherwise this group's text
}

// ruleDef is the uncompiled form of a Rule
type ruleDef struct {
	name    string
	expr    string
	capture int
}

// High-signal signatures with bounded false positives. Table order is the
// output order for findings on the same line.
var ruleDefs = []ruleDef{
	{name: "AWS Access Key", expr: `AKIA[0-9A-Z]{16}`},
	{name: "AWS Secret Key", expr: `aws(.{0,20})?(secret|access).{0,20}?([A-Za-z0-9/+=]{40})`},
	{name: "GitHub Token", expr: `ghp_[A-Za-z0-9]{36}`},
	{name: "GitHub App Token", expr: `(gho|ghu|ghs|ghr)_[A-Za-z0-9]{36}`},
	{name: "Slack Token", expr: `xox[abpr]-[A-Za-z0-9-]{10,48}`},
	{name: "Google API Key", expr: `AIza[0-9A-Za-z\-_]{35}`},
	{name: "Heroku API Key", expr: `heroku(.{0,20})?api(.{0,20})?key(.{0,20})?([0-9a-fA-F]{32})`},
	{name: "Private Key Start", expr: `-----BEGIN (RSA|DSA|EC|OPENSSH) PRIVATE KEY-----`},
	{name: "JWT", expr: `eyJ[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9_\-]{10,}`},
	{name: "Azure Storage Key", expr: `DefaultEndpointsProtocol=https;AccountName=[^;]+;AccountKey=[A-Za-z0-9+/=]{80,}`},
	{name: "Twilio API Key", expr: `SK[0-9a-fA-F]{32}`},
	{name: "Stripe Secret Key", expr: `sk_live_[0-9a-zA-Z]{24}`},
}

// rules is compiled once at package init and never mutated afterwards, so it
// is shared by all scan workers without locking.
var rules = compile(ruleDefs)

func compile(defs []ruleDef) []Rule {
	out := make([]Rule, 0, len(defs))
	for _, d := range defs {
		out = append(out, Rule{
			Name:         d.name,
			Pattern:      regexp.MustCompile(`(?i)` + d.expr),
			CaptureGroup: d.capture,
		})
	}
	return out
}

// Rules returns a copy of the rule table
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
