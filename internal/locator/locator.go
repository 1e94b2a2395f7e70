// Package locator discovers package manifests under a project root.
//
// The search is depth-bounded and keeps at most one manifest per ecosystem:
// the one closest to the root wins, with the ecosystem's candidate order
// breaking ties at equal depth. Manifests of nested monorepo packages are
// deliberately not merged into the result; that is a known limitation, not
// an inference the locator should make.
package locator

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"stackwatch/internal/models"
)

// Manifest is one located manifest file.
type Manifest struct {
	Ecosystem models.Ecosystem
	Path      string // Absolute (or root-joined) path to the manifest
	Directory string // Manifest directory relative to the root, "/" for the root itself
}

type candidate struct {
	manifest Manifest
	depth    int
	rank     int // Index in the ecosystem's candidate list
}

// Locate scans root for manifests. Missing or unreadable files simply
// produce no entry; the only error returned is a failure to read the root
// itself.
func Locate(root string, maxDepth int, excludes []string) ([]Manifest, error) {
	if maxDepth <= 0 {
		maxDepth = models.DefaultMaxDepth
	}

	skip := make(map[string]bool, len(excludes))
	for _, name := range excludes {
		skip[name] = true
	}

	// filename -> (ecosystem, candidate rank)
	type slot struct {
		eco  models.Ecosystem
		rank int
	}
	wanted := make(map[string]slot)
	for _, eco := range models.AllEcosystems {
		for i, name := range eco.ManifestCandidates() {
			wanted[name] = slot{eco: eco, rank: i}
		}
	}

	best := make(map[models.Ecosystem]candidate)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // Unreadable entries are skipped, not fatal
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		depth := pathDepth(rel)

		if d.IsDir() {
			if path != root && (skip[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		s, ok := wanted[d.Name()]
		if !ok {
			return nil
		}

		dir := filepath.ToSlash(filepath.Dir(rel))
		if dir == "." {
			dir = "/"
		} else {
			dir = "/" + dir
		}

		c := candidate{
			manifest: Manifest{Ecosystem: s.eco, Path: path, Directory: dir},
			depth:    depth,
			rank:     s.rank,
		}
		if prev, exists := best[s.eco]; !exists || closer(c, prev) {
			best[s.eco] = c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out []Manifest
	for _, eco := range models.AllEcosystems {
		if c, ok := best[eco]; ok {
			out = append(out, c.manifest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ecosystem < out[j].Ecosystem })
	return out, nil
}

// closer reports whether a should replace b as the chosen manifest.
func closer(a, b candidate) bool {
	if a.depth != b.depth {
		return a.depth < b.depth
	}
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	return a.manifest.Path < b.manifest.Path
}

func pathDepth(rel string) int {
	if rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}
