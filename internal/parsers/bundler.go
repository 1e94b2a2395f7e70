package parsers

import (
	"regexp"
	"strings"

	"stackwatch/internal/models"
)

// GemfileParser parses Gemfile dependency declarations
type GemfileParser struct{}

// Ecosystem returns bundler
func (p *GemfileParser) Ecosystem() models.Ecosystem { return models.EcosystemBundler }

// CanParse returns true for Gemfiles
func (p *GemfileParser) CanParse(filename string) bool {
	return filename == "Gemfile" || filename == "gems.rb"
}

// gemCallPattern matches lines like: gem 'rails', '~> 7.1'
// Only the first constraint argument is captured; group blocks, source lines,
// and anything reached through Ruby evaluation are ignored. This is a
// tolerant line scanner, not a Ruby parser.
var gemCallPattern = regexp.MustCompile(`^\s*gem\s+['"]([A-Za-z0-9._-]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)

// Parse extracts dependencies from Gemfile content
func (p *GemfileParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var deps []models.Dependency

	for lineNum, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := gemCallPattern.FindStringSubmatch(line)
		if m == nil {
			continue // Not a gem call; group/end/source lines land here
		}

		deps = append(deps, models.Dependency{
			Name:       m[1],
			Constraint: m[2],
			Ecosystem:  models.EcosystemBundler,
			SourceFile: filepath,
			Line:       lineNum + 1,
		})
	}

	return lastWriteWins(deps), nil
}
