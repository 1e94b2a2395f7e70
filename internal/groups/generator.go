// Package groups turns detected frameworks into named, non-overlapping
// dependency update groups.
package groups

import (
	"fmt"
	"sort"
	"strings"

	"stackwatch/internal/frameworks"
	"stackwatch/internal/models"
)

// toolingUpdateTypes limits tooling groups to low-risk updates; app framework
// groups batch everything.
var toolingUpdateTypes = []string{"minor", "patch"}

// Generate emits update groups for one ecosystem from fixed per-framework and
// per-category templates:
//
//	<framework>-core       primary app framework
//	<framework>-ecosystem  secondary app frameworks
//	<category>-tooling     testing/data/serialization detections
//
// Package-name-to-group assignment is guaranteed collision-free: when a name
// would match more than one group's patterns, the more specific group keeps
// it (exact literal over wildcard, longer prefix over shorter) and the others
// receive an exclude pattern. Ecosystems with no detections get no groups.
func Generate(eco models.Ecosystem, detected []models.DetectedFramework, names []string) []models.DependencyGroup {
	byName := make(map[string]*models.DependencyGroup)

	for _, fw := range detected {
		groupName := templateName(fw)
		sig, ok := signaturePatterns(eco, fw.Framework)
		if !ok {
			continue
		}

		g, exists := byName[groupName]
		if !exists {
			g = &models.DependencyGroup{
				Name:      groupName,
				Ecosystem: eco,
			}
			if tooling(fw.Category) {
				g.UpdateTypes = toolingUpdateTypes
			}
			byName[groupName] = g
		}
		g.Patterns = mergePatterns(g.Patterns, sig)
	}

	out := make([]models.DependencyGroup, 0, len(byName))
	for _, g := range byName {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	resolveOverlaps(out, names)
	return out
}

// templateName picks the group name for one detection.
func templateName(fw models.DetectedFramework) string {
	if tooling(fw.Category) {
		if strings.HasSuffix(fw.Framework, "-tooling") {
			return fw.Framework
		}
		return fw.Category + "-tooling"
	}
	if fw.Primary {
		return fw.Framework + "-core"
	}
	return fw.Framework + "-ecosystem"
}

func tooling(category string) bool {
	switch category {
	case frameworks.CategoryTesting, frameworks.CategoryData, frameworks.CategorySerialization:
		return true
	}
	return false
}

func signaturePatterns(eco models.Ecosystem, framework string) ([]string, bool) {
	for _, sig := range frameworks.Signatures(eco) {
		if sig.Framework == framework {
			return sig.Patterns, true
		}
	}
	return nil, false
}

func mergePatterns(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p] = true
	}
	for _, p := range add {
		if !seen[p] {
			seen[p] = true
			existing = append(existing, p)
		}
	}
	sort.Strings(existing)
	return existing
}

// resolveOverlaps walks the actual extracted names and, for any name claimed
// by several groups, carves it out of every group except the most specific
// one. Overlapping templates are a registry defect caught loudly by
// ValidateDisjoint in tests; here the outcome must stay deterministic rather
// than crash.
func resolveOverlaps(groups []models.DependencyGroup, names []string) {
	for _, name := range names {
		var claimants []int
		for i := range groups {
			if claims(groups[i], name) {
				claimants = append(claimants, i)
			}
		}
		if len(claimants) < 2 {
			continue
		}

		winner := claimants[0]
		for _, i := range claimants[1:] {
			if moreSpecific(groups[i], groups[winner], name) {
				winner = i
			}
		}
		for _, i := range claimants {
			if i == winner {
				continue
			}
			groups[i].ExcludePatterns = mergePatterns(groups[i].ExcludePatterns, []string{name})
		}
	}
}

// claims reports whether g's combined pattern set captures name.
func claims(g models.DependencyGroup, name string) bool {
	for _, p := range g.ExcludePatterns {
		if frameworks.MatchPattern(p, name) {
			return false
		}
	}
	for _, p := range g.Patterns {
		if frameworks.MatchPattern(p, name) {
			return true
		}
	}
	return false
}

// moreSpecific reports whether group a matches name more specifically than
// group b: an exact literal beats any wildcard, a longer wildcard prefix
// beats a shorter one, and the lexically smaller group name settles the rest.
func moreSpecific(a, b models.DependencyGroup, name string) bool {
	exactA, lenA := bestMatch(a, name)
	exactB, lenB := bestMatch(b, name)
	if exactA != exactB {
		return exactA
	}
	if lenA != lenB {
		return lenA > lenB
	}
	return a.Name < b.Name
}

// bestMatch scores the strongest pattern in g matching name.
func bestMatch(g models.DependencyGroup, name string) (exact bool, length int) {
	for _, p := range g.Patterns {
		if !frameworks.MatchPattern(p, name) {
			continue
		}
		if prefix, wildcard := strings.CutSuffix(p, "*"); wildcard {
			if !exact && len(prefix) > length {
				length = len(prefix)
			}
		} else {
			if !exact || len(p) > length {
				exact = true
				length = len(p)
			}
		}
	}
	return exact, length
}

// ValidateDisjoint verifies the no-overlap invariant over a concrete name
// set: no name may be claimed by more than one group. Violations are
// programming defects in the signature templates; tests fail loudly on them.
func ValidateDisjoint(groups []models.DependencyGroup, names []string) error {
	for _, name := range names {
		var owners []string
		for _, g := range groups {
			if claims(g, name) {
				owners = append(owners, g.Name)
			}
		}
		if len(owners) > 1 {
			return fmt.Errorf("package %q claimed by multiple groups: %s", name, strings.Join(owners, ", "))
		}
	}
	return nil
}
