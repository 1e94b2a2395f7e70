package models

import "sort"

// DetectedFramework records one framework signature that matched at least one
// extracted dependency name.
type DetectedFramework struct {
	Ecosystem  Ecosystem
	Framework  string   // Framework id, e.g. "django", "react"
	Category   string   // e.g. "web", "testing", "data"
	Packages   []string // Matched package names, deduplicated and sorted
	MatchCount int      // len(Packages), kept explicit for reporting
	Primary    bool     // True if this is the ecosystem's primary framework
}

// EcosystemReport summarizes everything detected for one ecosystem.
type EcosystemReport struct {
	Ecosystem    Ecosystem
	Directory    string // Directory of the manifest, relative to the project root
	ManifestPath string
	Dependencies []Dependency
	Frameworks   []DetectedFramework
	Primary      string // Primary framework id; empty when no signature qualifies
}

// DependencyNames returns the sorted, deduplicated set of extracted package
// names for this ecosystem.
func (r EcosystemReport) DependencyNames() []string {
	seen := make(map[string]bool, len(r.Dependencies))
	var names []string
	for _, d := range r.Dependencies {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	sort.Strings(names)
	return names
}
