package reporter

import "stackwatch/internal/models"

// Reporter is the interface for output formatters
type Reporter interface {
	// Report renders the scan result for the user
	Report(result *models.ScanResult) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	default:
		return &TerminalReporter{}
	}
}
