// Package assembler combines ecosystem reports and generated groups into the
// final monitoring configuration. It is a pure combination step: no I/O, no
// clock reads, same inputs always produce the same output.
package assembler

import (
	"sort"

	"stackwatch/internal/models"
)

// SchemaVersion is the Dependabot configuration schema version emitted.
const SchemaVersion = 2

// defaultSchedule is the fixed update cadence for every generated entry.
var defaultSchedule = models.Schedule{Interval: "weekly", Day: "monday"}

// Assemble builds the MonitoringConfiguration from per-ecosystem reports and
// their generated groups.
//
// Free tier gets one ungrouped update entry per detected ecosystem; pro and
// enterprise entries carry their groups. opts.GroupsForAllTiers forces
// grouped output regardless of tier while the launch promotion runs; the
// caller owns that decision so this function stays deterministic.
func Assemble(reports []models.EcosystemReport, generated map[models.Ecosystem][]models.DependencyGroup, opts models.Options) models.MonitoringConfiguration {
	config := models.MonitoringConfiguration{
		Version: SchemaVersion,
		Tier:    opts.Tier,
	}

	grouped := opts.Tier.Grouped() || opts.GroupsForAllTiers

	sorted := make([]models.EcosystemReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Ecosystem < sorted[j].Ecosystem })

	for _, report := range sorted {
		if len(report.Dependencies) == 0 {
			continue
		}

		entry := models.UpdateEntry{
			PackageEcosystem: string(report.Ecosystem),
			Directory:        report.Directory,
			Schedule:         defaultSchedule,
		}

		if grouped {
			entry.Groups = groupSpecs(generated[report.Ecosystem])
		}

		config.Updates = append(config.Updates, entry)
	}

	return config
}

// groupSpecs converts generated groups to their serialized form. An
// ecosystem with dependencies but no detected framework yields nil: the
// entry stays ungrouped rather than carrying an empty groups map.
func groupSpecs(gs []models.DependencyGroup) map[string]models.GroupSpec {
	if len(gs) == 0 {
		return nil
	}
	specs := make(map[string]models.GroupSpec, len(gs))
	for _, g := range gs {
		specs[g.Name] = models.GroupSpec{
			Patterns:        g.Patterns,
			ExcludePatterns: g.ExcludePatterns,
			UpdateTypes:     g.UpdateTypes,
		}
	}
	return specs
}
