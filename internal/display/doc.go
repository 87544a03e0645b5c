// Package display renders user-facing notices on stderr for the secretscan CLI.
//
// A Warning is a short block with a title, an optional message, an optional
// numbered list of affected files and an optional suggestion:
//
//	warning := display.FindingsWarning(findings)
//	warning.Display(os.Stderr, report.ColorEnabled(os.Stderr))
//
// Color is opt-in per call so that redirected output stays free of ANSI codes.
package display
