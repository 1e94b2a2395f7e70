package models

// MonitoringConfiguration is the in-memory form of the generated update
// policy. Its shape mirrors the Dependabot v2 schema so the writer can
// serialize it directly.
type MonitoringConfiguration struct {
	Version int           `yaml:"version" json:"version"`
	Updates []UpdateEntry `yaml:"updates" json:"updates"`
	Tier    Tier          `yaml:"-" json:"tier"`
}

// UpdateEntry is a single package-ecosystem update configuration.
type UpdateEntry struct {
	PackageEcosystem string               `yaml:"package-ecosystem" json:"package-ecosystem"`
	Directory        string               `yaml:"directory" json:"directory"`
	Schedule         Schedule             `yaml:"schedule" json:"schedule"`
	Groups           map[string]GroupSpec `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// Schedule controls how often update pull requests are raised.
type Schedule struct {
	Interval string `yaml:"interval" json:"interval"`
	Day      string `yaml:"day,omitempty" json:"day,omitempty"`
}

// GroupSpec is the serialized form of one dependency group.
type GroupSpec struct {
	Patterns        []string `yaml:"patterns" json:"patterns"`
	ExcludePatterns []string `yaml:"exclude-patterns,omitempty" json:"exclude-patterns,omitempty"`
	UpdateTypes     []string `yaml:"update-types,omitempty" json:"update-types,omitempty"`
}

// Empty reports whether no ecosystems were detected at all.
func (c MonitoringConfiguration) Empty() bool {
	return len(c.Updates) == 0
}
