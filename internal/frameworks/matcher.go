package frameworks

import (
	"sort"
	"strings"

	"stackwatch/internal/models"
)

// MatchPattern reports whether name satisfies pattern. A trailing "*" makes
// the pattern a prefix wildcard; anything else is an exact literal.
func MatchPattern(pattern, name string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return pattern == name
}

// Detect matches the extracted dependency names of one ecosystem against its
// signature registry. Signatures with zero matches produce no entry; a name
// appears at most once per detection even when it satisfies several of the
// signature's patterns. The Primary flag is left unset here.
func Detect(eco models.Ecosystem, names []string) []models.DetectedFramework {
	var detected []models.DetectedFramework

	for _, sig := range Signatures(eco) {
		matched := make(map[string]bool)
		for _, pattern := range sig.Patterns {
			for _, name := range names {
				if MatchPattern(pattern, name) {
					matched[name] = true
				}
			}
		}
		if len(matched) == 0 {
			continue
		}

		packages := make([]string, 0, len(matched))
		for name := range matched {
			packages = append(packages, name)
		}
		sort.Strings(packages)

		detected = append(detected, models.DetectedFramework{
			Ecosystem:  eco,
			Framework:  sig.Framework,
			Category:   sig.Category,
			Packages:   packages,
			MatchCount: len(packages),
		})
	}

	return detected
}
