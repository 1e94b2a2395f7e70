package models

// Options holds configuration for a single pipeline run
type Options struct {
	// Root is the project directory to scan
	Root string

	// MaxDepth bounds the manifest search below Root. Depth 1 is the root
	// itself; manifests in nested monorepo packages beyond the bound are
	// never discovered.
	MaxDepth int

	// Excludes are directory names skipped during discovery
	Excludes []string

	// Tier selects grouped vs ungrouped output
	Tier Tier

	// GroupsForAllTiers forces grouped output regardless of Tier. Set by the
	// caller while the launch promotion is active; remove the caller-side
	// switch to end the promotion.
	GroupsForAllTiers bool
}

// DefaultMaxDepth bounds how deep the locator searches for manifests.
const DefaultMaxDepth = 3

// DefaultExcludes are directory names that never contain project manifests
// worth monitoring.
var DefaultExcludes = []string{
	"node_modules", "vendor", "target", "dist", "build",
	".git", ".hg", ".svn",
	"__pycache__", ".venv", "venv", ".tox",
}

// DefaultOptions returns Options with sensible defaults for root.
func DefaultOptions(root string) Options {
	return Options{
		Root:     root,
		MaxDepth: DefaultMaxDepth,
		Excludes: DefaultExcludes,
		Tier:     TierFree,
	}
}
