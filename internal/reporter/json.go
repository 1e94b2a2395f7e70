package reporter

import (
	"encoding/json"

	"stackwatch/internal/models"
)

// JSONReporter outputs the scan result in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Root       string                         `json:"root"`
	Ecosystems []jsonEcosystem                `json:"ecosystems"`
	Config     models.MonitoringConfiguration `json:"config"`
}

type jsonEcosystem struct {
	Ecosystem    string          `json:"ecosystem"`
	Manifest     string          `json:"manifest"`
	Dependencies int             `json:"dependencies"`
	Primary      string          `json:"primary,omitempty"`
	Frameworks   []jsonFramework `json:"frameworks,omitempty"`
}

type jsonFramework struct {
	Framework string   `json:"framework"`
	Category  string   `json:"category"`
	Packages  []string `json:"packages"`
	Primary   bool     `json:"primary,omitempty"`
}

// Report generates JSON output for the scan result
func (r *JSONReporter) Report(result *models.ScanResult) ([]byte, error) {
	output := jsonOutput{
		Root:       result.Root,
		Ecosystems: make([]jsonEcosystem, 0, len(result.Reports)),
		Config:     result.Config,
	}

	for _, report := range result.Reports {
		eco := jsonEcosystem{
			Ecosystem:    string(report.Ecosystem),
			Manifest:     report.ManifestPath,
			Dependencies: len(report.Dependencies),
			Primary:      report.Primary,
		}
		for _, fw := range report.Frameworks {
			eco.Frameworks = append(eco.Frameworks, jsonFramework{
				Framework: fw.Framework,
				Category:  fw.Category,
				Packages:  fw.Packages,
				Primary:   fw.Primary,
			})
		}
		output.Ecosystems = append(output.Ecosystems, eco)
	}

	return json.MarshalIndent(output, "", "  ")
}
