package models

// ScanResult bundles everything one pipeline run produced: the per-ecosystem
// detection reports and the assembled configuration.
type ScanResult struct {
	Root    string
	Reports []EcosystemReport
	Config  MonitoringConfiguration
}

// Report returns the report for the given ecosystem, or nil.
func (r *ScanResult) Report(eco Ecosystem) *EcosystemReport {
	for i := range r.Reports {
		if r.Reports[i].Ecosystem == eco {
			return &r.Reports[i]
		}
	}
	return nil
}
