package parsers

import (
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"stackwatch/internal/models"
)

// PipRequirementsParser parses requirements.txt files
type PipRequirementsParser struct{}

// Ecosystem returns pip
func (p *PipRequirementsParser) Ecosystem() models.Ecosystem { return models.EcosystemPip }

// CanParse returns true for requirements.txt, the only requirements filename
// the locator delivers
func (p *PipRequirementsParser) CanParse(filename string) bool {
	return filename == "requirements.txt"
}

// constraintPattern matches "name<op>version" specifiers such as
// requests>=2.28.0, django~=4.2, pyyaml==6.* and keeps the constraint intact.
var constraintPattern = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*([<>=!~]=?\s*\S.*)$`)

// namePattern matches a bare package name without a version
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Parse extracts dependencies from requirements.txt content
func (p *PipRequirementsParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var deps []models.Dependency

	for lineNum, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)

		// Skip empty lines, comments, and pip options (-r, --index-url, ...)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		// VCS requirements carry the package name in the egg fragment
		if name, ok := vcsRequirementName(line); ok {
			deps = append(deps, models.Dependency{
				Name:       normalizePipName(name),
				Ecosystem:  models.EcosystemPip,
				SourceFile: filepath,
				Line:       lineNum + 1,
			})
			continue
		}

		// Remove inline comments
		if idx := strings.Index(line, "#"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}

		// Remove environment markers
		if idx := strings.Index(line, ";"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}

		line = stripExtras(line)

		name, constraint := splitRequirement(line)
		if name == "" {
			continue // Malformed line; skip it, keep going
		}
		deps = append(deps, models.Dependency{
			Name:       normalizePipName(name),
			Constraint: constraint,
			Ecosystem:  models.EcosystemPip,
			SourceFile: filepath,
			Line:       lineNum + 1,
		})
	}

	return lastWriteWins(deps), nil
}

// vcsRequirementName extracts the package name from forms like
// git+https://github.com/org/proj.git#egg=proj. Without an egg fragment the
// repository name is used.
func vcsRequirementName(line string) (string, bool) {
	if idx := strings.Index(line, "#egg="); idx >= 0 {
		name := line[idx+len("#egg="):]
		if cut := strings.IndexAny(name, "&[ \t#"); cut >= 0 {
			name = name[:cut]
		}
		if namePattern.MatchString(name) {
			return name, true
		}
		return "", false
	}
	if strings.HasPrefix(line, "git+") {
		raw := strings.TrimPrefix(line, "git+")
		if cut := strings.IndexAny(raw, "@# \t"); cut >= 0 {
			raw = raw[:cut]
		}
		name := strings.TrimSuffix(path.Base(raw), ".git")
		if namePattern.MatchString(name) {
			return name, true
		}
	}
	return "", false
}

// stripExtras removes an [extras] suffix such as requests[security]
func stripExtras(line string) string {
	idx := strings.Index(line, "[")
	if idx <= 0 {
		return line
	}
	end := strings.Index(line, "]")
	if end < idx {
		return line
	}
	return strings.TrimSpace(line[:idx] + line[end+1:])
}

// splitRequirement splits a requirement specifier into name and verbatim
// constraint ("" when unconstrained).
func splitRequirement(spec string) (string, string) {
	spec = strings.TrimSpace(spec)
	if m := constraintPattern.FindStringSubmatch(spec); m != nil {
		return m[1], strings.ReplaceAll(m[2], " ", "")
	}
	if namePattern.MatchString(spec) {
		return spec, ""
	}
	return "", ""
}

// normalizePipName lowercases the name; PyPI is case-insensitive. Hyphens,
// underscores, and dots are preserved as written.
func normalizePipName(name string) string {
	return strings.ToLower(name)
}

// PipPyProjectParser parses pyproject.toml files
type PipPyProjectParser struct{}

// Ecosystem returns pip
func (p *PipPyProjectParser) Ecosystem() models.Ecosystem { return models.EcosystemPip }

// CanParse returns true for pyproject.toml files
func (p *PipPyProjectParser) CanParse(filename string) bool {
	return filename == "pyproject.toml"
}

// pyproject covers both PEP 621 metadata and legacy Poetry tables
type pyproject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]interface{} `toml:"dependencies"`
			DevDependencies map[string]interface{} `toml:"dev-dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Parse extracts dependencies from pyproject.toml content. Both the PEP 621
// list form and the legacy Poetry table form are supported; deeply nested
// array-of-tables constructs are not captured.
func (p *PipPyProjectParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var proj pyproject
	if err := toml.Unmarshal(content, &proj); err != nil {
		return nil, err
	}

	var deps []models.Dependency
	add := func(spec string) {
		name, constraint := parsePEP508(spec)
		if name == "" {
			return
		}
		deps = append(deps, models.Dependency{
			Name:       normalizePipName(name),
			Constraint: constraint,
			Ecosystem:  models.EcosystemPip,
			SourceFile: filepath,
		})
	}

	// PEP 621 list-of-strings dependencies
	for _, spec := range proj.Project.Dependencies {
		add(spec)
	}
	for _, group := range sortedKeys(proj.Project.OptionalDependencies) {
		for _, spec := range proj.Project.OptionalDependencies[group] {
			add(spec)
		}
	}

	// Legacy Poetry tables
	for _, tbl := range []map[string]interface{}{
		proj.Tool.Poetry.Dependencies,
		proj.Tool.Poetry.DevDependencies,
	} {
		for _, name := range sortedKeys(tbl) {
			if name == "python" {
				continue
			}
			deps = append(deps, models.Dependency{
				Name:       normalizePipName(name),
				Constraint: tableConstraint(tbl[name]),
				Ecosystem:  models.EcosystemPip,
				SourceFile: filepath,
			})
		}
	}

	return lastWriteWins(deps), nil
}

// parsePEP508 splits a PEP 508 specification such as "flask[async]>=2.0"
func parsePEP508(spec string) (string, string) {
	if idx := strings.Index(spec, ";"); idx > 0 {
		spec = spec[:idx]
	}
	return splitRequirement(stripExtras(strings.TrimSpace(spec)))
}

// tableConstraint extracts the constraint from a dependency value that is
// either a bare version string or an inline table with a version key.
func tableConstraint(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case map[string]interface{}:
		if ver, ok := v["version"].(string); ok {
			return ver
		}
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
