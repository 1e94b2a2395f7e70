package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEcosystemIdentifiers(t *testing.T) {
	assert.Equal(t, "npm", string(EcosystemNpm))
	assert.Equal(t, "pip", string(EcosystemPip))
	assert.Equal(t, "cargo", string(EcosystemCargo))
	assert.Equal(t, "bundler", string(EcosystemBundler))
	assert.Equal(t, "gomod", string(EcosystemGoMod))
}

func TestManifestCandidatesCoverAllEcosystems(t *testing.T) {
	for _, eco := range AllEcosystems {
		assert.True(t, eco.Valid())
		assert.NotEmpty(t, eco.ManifestCandidates(), "no manifest candidates for %s", eco)
	}
	assert.False(t, Ecosystem("maven").Valid())
}

func TestPipCandidateOrder(t *testing.T) {
	// requirements.txt outranks pyproject.toml when both sit at the same depth
	assert.Equal(t, []string{"requirements.txt", "pyproject.toml"}, EcosystemPip.ManifestCandidates())
}
