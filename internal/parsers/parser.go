package parsers

import "stackwatch/internal/models"

// Parser is the interface for ecosystem manifest parsers. All parsers return
// a uniform dependency list regardless of the manifest dialect.
type Parser interface {
	// Ecosystem identifies which ecosystem this parser serves
	Ecosystem() models.Ecosystem

	// CanParse returns true if this parser can handle the given filename
	CanParse(filename string) bool

	// Parse extracts dependencies from the file content. Malformed entries
	// are skipped individually; Parse only errors when the file as a whole
	// is unusable.
	Parse(filepath string, content []byte) ([]models.Dependency, error)
}

// registry dispatches parsers by ecosystem id. Built once; read-only after.
var registry = map[models.Ecosystem][]Parser{
	models.EcosystemPip:     {&PipRequirementsParser{}, &PipPyProjectParser{}},
	models.EcosystemCargo:   {&CargoTomlParser{}},
	models.EcosystemBundler: {&GemfileParser{}},
	models.EcosystemNpm:     {&NpmPackageJSONParser{}},
	models.EcosystemGoMod:   {&GoModParser{}},
}

// ForManifest returns the parser handling filename within ecosystem, or nil.
func ForManifest(eco models.Ecosystem, filename string) Parser {
	for _, p := range registry[eco] {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// lastWriteWins drops duplicate names, keeping the constraint of the last
// declaration while preserving first-seen order.
func lastWriteWins(deps []models.Dependency) []models.Dependency {
	index := make(map[string]int, len(deps))
	var out []models.Dependency
	for _, d := range deps {
		if i, seen := index[d.Name]; seen {
			out[i].Constraint = d.Constraint
			out[i].Line = d.Line
			continue
		}
		index[d.Name] = len(out)
		out = append(out, d)
	}
	return out
}
