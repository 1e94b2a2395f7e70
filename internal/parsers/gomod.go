package parsers

import (
	"golang.org/x/mod/modfile"

	"stackwatch/internal/models"
)

// GoModParser parses go.mod files
type GoModParser struct {
	IncludeIndirect bool // Whether to include indirect dependencies
}

// Ecosystem returns gomod
func (p *GoModParser) Ecosystem() models.Ecosystem { return models.EcosystemGoMod }

// CanParse returns true for go.mod files
func (p *GoModParser) CanParse(filename string) bool {
	return filename == "go.mod"
}

// Parse extracts dependencies from go.mod content
func (p *GoModParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	mod, err := modfile.Parse(filepath, content, nil)
	if err != nil {
		return nil, err
	}

	var deps []models.Dependency
	for _, req := range mod.Require {
		if req.Indirect && !p.IncludeIndirect {
			continue
		}
		deps = append(deps, models.Dependency{
			Name:       req.Mod.Path,
			Constraint: req.Mod.Version,
			Ecosystem:  models.EcosystemGoMod,
			SourceFile: filepath,
			Line:       req.Syntax.Start.Line,
		})
	}

	return lastWriteWins(deps), nil
}
