package models

// DependencyGroup is a named bundle of match patterns batching related
// packages into one update-review unit. Patterns are either exact literals or
// prefix wildcards ("pytest-*").
type DependencyGroup struct {
	Name            string
	Ecosystem       Ecosystem
	Patterns        []string
	ExcludePatterns []string // Carved out when another group claims a package
	UpdateTypes     []string // e.g. "minor", "patch"; empty means all
}
