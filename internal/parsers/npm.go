package parsers

import (
	"encoding/json"

	"stackwatch/internal/models"
)

// NpmPackageJSONParser parses package.json files (direct dependencies only)
type NpmPackageJSONParser struct{}

// Ecosystem returns npm
func (p *NpmPackageJSONParser) Ecosystem() models.Ecosystem { return models.EcosystemNpm }

// CanParse returns true for package.json files
func (p *NpmPackageJSONParser) CanParse(filename string) bool {
	return filename == "package.json"
}

// packageJSON represents the structure of package.json
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Parse extracts dependencies from package.json content. Constraints are
// kept verbatim ("^18.2.0" stays "^18.2.0"); nothing here compares versions.
func (p *NpmPackageJSONParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, err
	}

	var deps []models.Dependency
	for _, section := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		for _, name := range sortedKeys(section) {
			deps = append(deps, models.Dependency{
				Name:       name,
				Constraint: section[name],
				Ecosystem:  models.EcosystemNpm,
				SourceFile: filepath,
			})
		}
	}

	return lastWriteWins(deps), nil
}
