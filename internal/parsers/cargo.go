package parsers

import (
	"github.com/BurntSushi/toml"

	"stackwatch/internal/models"
)

// CargoTomlParser parses Cargo.toml files
type CargoTomlParser struct{}

// Ecosystem returns cargo
func (p *CargoTomlParser) Ecosystem() models.Ecosystem { return models.EcosystemCargo }

// CanParse returns true for Cargo.toml files
func (p *CargoTomlParser) CanParse(filename string) bool {
	return filename == "Cargo.toml"
}

// cargoManifest reads the dependency tables. Values are either bare version
// strings or inline tables carrying a version key; anything else (path and
// git dependencies without a version) yields an unconstrained entry.
type cargoManifest struct {
	Dependencies    map[string]interface{} `toml:"dependencies"`
	DevDependencies map[string]interface{} `toml:"dev-dependencies"`
}

// Parse extracts dependencies from Cargo.toml content
func (p *CargoTomlParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var manifest cargoManifest
	if err := toml.Unmarshal(content, &manifest); err != nil {
		return nil, err
	}

	var deps []models.Dependency
	for _, tbl := range []map[string]interface{}{manifest.Dependencies, manifest.DevDependencies} {
		for _, name := range sortedKeys(tbl) {
			// Crate names use letters, digits, hyphens, and underscores
			if !namePattern.MatchString(name) {
				continue
			}
			deps = append(deps, models.Dependency{
				Name:       name,
				Constraint: tableConstraint(tbl[name]),
				Ecosystem:  models.EcosystemCargo,
				SourceFile: filepath,
			})
		}
	}

	return lastWriteWins(deps), nil
}
