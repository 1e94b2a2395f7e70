package models

// Dependency represents a single package dependency extracted from a manifest
type Dependency struct {
	Name       string
	Constraint string // Version constraint verbatim, e.g. ">=2.0.0"; empty if unconstrained
	Ecosystem  Ecosystem
	SourceFile string // File where this dependency was found
	Line       int    // Line number in source file (if available)
}

// String returns a human-readable representation
func (d Dependency) String() string {
	if d.Constraint == "" {
		return d.Name
	}
	return d.Name + " " + d.Constraint
}
