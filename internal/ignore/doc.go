// Package ignore compiles gitignore-style exclusion rules into a single matcher.
//
// Rules are gathered from several sources and merged in a fixed precedence
// order, so that later lines can re-include (with "!") what earlier lines
// excluded:
//
//  1. the .gitignore at the scan root
//  2. each extra ignore file, in argument order
//  3. the built-in default excludes (.git/, .venv/, venv/, node_modules/, dist/, build/)
//  4. ad-hoc glob strings from the command line
//
// Blank lines and comment lines are dropped before compilation. When nothing is
// left the builder returns a nil *Spec, which ignores nothing. Matching uses the
// gitwildmatch semantics of go-git's gitignore package: the last matching
// pattern wins, a trailing "/" restricts a pattern to directories (and thus to
// everything beneath them), and a leading "/" anchors it to the root.
//
// Only file paths are ever evaluated; directories are walked regardless.
package ignore
