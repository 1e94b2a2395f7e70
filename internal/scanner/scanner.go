// Package scanner orchestrates the detection pipeline: locate manifests,
// extract dependencies, match framework signatures, generate groups, and
// assemble the tiered configuration.
//
// The whole pipeline is a pure function of the directory contents: it reads
// the filesystem but never writes, holds no state between runs, and is safe
// to invoke concurrently with independent checks.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"stackwatch/internal/assembler"
	"stackwatch/internal/frameworks"
	"stackwatch/internal/groups"
	"stackwatch/internal/locator"
	"stackwatch/internal/models"
	"stackwatch/internal/parsers"
)

// Scanner runs the detection pipeline for one project root
type Scanner struct {
	opts models.Options
}

// New creates a Scanner with the given options
func New(opts models.Options) *Scanner {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = models.DefaultMaxDepth
	}
	if opts.Excludes == nil {
		opts.Excludes = models.DefaultExcludes
	}
	if opts.Tier == "" {
		opts.Tier = models.TierFree
	}
	return &Scanner{opts: opts}
}

// Scan runs the full pipeline. A project with no supported manifests yields
// an empty configuration, not an error; whether that is user-facing is the
// caller's call.
func (s *Scanner) Scan() (*models.ScanResult, error) {
	manifests, err := locator.Locate(s.opts.Root, s.opts.MaxDepth, s.opts.Excludes)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.opts.Root, err)
	}

	var reports []models.EcosystemReport
	generated := make(map[models.Ecosystem][]models.DependencyGroup)

	for _, manifest := range manifests {
		report, ok := s.extract(manifest)
		if !ok {
			continue
		}

		names := report.DependencyNames()
		report.Frameworks = frameworks.Detect(report.Ecosystem, names)
		report.Primary = frameworks.MarkPrimary(report.Ecosystem, report.Frameworks)

		if gs := groups.Generate(report.Ecosystem, report.Frameworks, names); len(gs) > 0 {
			generated[report.Ecosystem] = gs
		}

		reports = append(reports, report)
	}

	return &models.ScanResult{
		Root:    s.opts.Root,
		Reports: reports,
		Config:  assembler.Assemble(reports, generated, s.opts),
	}, nil
}

// extract parses one located manifest. Unreadable or wholly unparseable
// manifests drop their ecosystem from the output instead of failing the run;
// an ecosystem only reports when at least one dependency was extracted.
func (s *Scanner) extract(manifest locator.Manifest) (models.EcosystemReport, bool) {
	parser := parsers.ForManifest(manifest.Ecosystem, filepath.Base(manifest.Path))
	if parser == nil {
		return models.EcosystemReport{}, false
	}

	content, err := os.ReadFile(manifest.Path)
	if err != nil {
		return models.EcosystemReport{}, false
	}

	deps, err := parser.Parse(manifest.Path, content)
	if err != nil || len(deps) == 0 {
		return models.EcosystemReport{}, false
	}

	return models.EcosystemReport{
		Ecosystem:    manifest.Ecosystem,
		Directory:    manifest.Directory,
		ManifestPath: manifest.Path,
		Dependencies: deps,
	}, true
}
