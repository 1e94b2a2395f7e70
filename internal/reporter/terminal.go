package reporter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stackwatch/internal/models"
)

// TerminalReporter renders the scan result in a human-readable terminal format
type TerminalReporter struct{}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	ecoStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Report generates terminal output for the scan result
func (r *TerminalReporter) Report(result *models.ScanResult) ([]byte, error) {
	var sb strings.Builder

	if len(result.Reports) == 0 {
		sb.WriteString("No supported manifests found.\n")
		sb.WriteString(dimStyle.Render("Looked for: package.json, requirements.txt, pyproject.toml, Cargo.toml, Gemfile, gems.rb, go.mod"))
		sb.WriteString("\n")
		return []byte(sb.String()), nil
	}

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Detected %d ecosystem(s) in %s", len(result.Reports), result.Root)))
	sb.WriteString("\n\n")

	groupsByEco := make(map[string]map[string]models.GroupSpec)
	for _, entry := range result.Config.Updates {
		groupsByEco[entry.PackageEcosystem] = entry.Groups
	}

	for _, report := range result.Reports {
		sb.WriteString(ecoStyle.Render(string(report.Ecosystem)))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s (%d dependencies)", report.ManifestPath, len(report.Dependencies))))
		sb.WriteString("\n")

		for _, fw := range report.Frameworks {
			marker := "  -"
			if fw.Primary {
				marker = "  *"
			}
			line := fmt.Sprintf("%s %s (%s): %s", marker, fw.Framework, fw.Category, strings.Join(fw.Packages, ", "))
			if fw.Primary {
				line = primaryStyle.Render(line)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if len(report.Frameworks) == 0 {
			sb.WriteString(dimStyle.Render("    no known frameworks; updates stay ungrouped"))
			sb.WriteString("\n")
		}

		if groups := groupsByEco[string(report.Ecosystem)]; len(groups) > 0 {
			sb.WriteString(fmt.Sprintf("    %d update group(s)\n", len(groups)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render(fmt.Sprintf("Tier: %s", result.Config.Tier)))
	sb.WriteString("\n")
	return []byte(sb.String()), nil
}
