package models

// Ecosystem represents a package ecosystem
type Ecosystem string

const (
	EcosystemNpm     Ecosystem = "npm"
	EcosystemPip     Ecosystem = "pip"
	EcosystemCargo   Ecosystem = "cargo"
	EcosystemBundler Ecosystem = "bundler"
	EcosystemGoMod   Ecosystem = "gomod"
)

// AllEcosystems lists every supported ecosystem in a fixed order. The order
// matters: it is the iteration order for discovery and output assembly, which
// keeps the whole pipeline deterministic.
var AllEcosystems = []Ecosystem{
	EcosystemNpm,
	EcosystemPip,
	EcosystemCargo,
	EcosystemBundler,
	EcosystemGoMod,
}

// ManifestCandidates returns the manifest filenames for an ecosystem, in
// preference order. When more than one candidate exists at the same depth,
// the earlier one wins.
func (e Ecosystem) ManifestCandidates() []string {
	switch e {
	case EcosystemNpm:
		return []string{"package.json"}
	case EcosystemPip:
		return []string{"requirements.txt", "pyproject.toml"}
	case EcosystemCargo:
		return []string{"Cargo.toml"}
	case EcosystemBundler:
		return []string{"Gemfile", "gems.rb"}
	case EcosystemGoMod:
		return []string{"go.mod"}
	}
	return nil
}

// Valid reports whether e is one of the supported ecosystems.
func (e Ecosystem) Valid() bool {
	for _, known := range AllEcosystems {
		if e == known {
			return true
		}
	}
	return false
}
