package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackwatch/internal/models"
)

func writeManifest(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
}

func TestScanEmptyProject(t *testing.T) {
	result, err := New(models.DefaultOptions(t.TempDir())).Scan()
	require.NoError(t, err)
	assert.Empty(t, result.Reports)
	assert.True(t, result.Config.Empty())
}

func TestScanPEP621GroupedPipeline(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "pyproject.toml", `
[project]
name = "svc"
dependencies = ["fastapi>=0.110.0", "pydantic>=2.0.0"]
`)

	opts := models.DefaultOptions(root)
	opts.Tier = models.TierPro
	result, err := New(opts).Scan()
	require.NoError(t, err)

	report := result.Report(models.EcosystemPip)
	require.NotNil(t, report)
	assert.Equal(t, "fastapi", report.Primary)

	require.Len(t, result.Config.Updates, 1)
	entry := result.Config.Updates[0]
	assert.Equal(t, "pip", entry.PackageEcosystem)

	core, ok := entry.Groups["fastapi-core"]
	require.True(t, ok, "expected an fastapi-core group")
	assert.Contains(t, core.Patterns, "fastapi")
	assert.Contains(t, core.Patterns, "pydantic")
}

func TestScanPolyglotProject(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "package.json", `{"dependencies": {"react": "^18.2.0", "react-dom": "^18.2.0"}}`)
	writeManifest(t, root, "Cargo.toml", "[dependencies]\nserde = \"1.0\"\ntokio = { version = \"1\" }\n")
	writeManifest(t, root, "Gemfile", "gem 'rails', '~> 7.1'\n")

	opts := models.DefaultOptions(root)
	opts.Tier = models.TierEnterprise
	result, err := New(opts).Scan()
	require.NoError(t, err)

	require.Len(t, result.Config.Updates, 3)
	var ecosystems []string
	for _, entry := range result.Config.Updates {
		ecosystems = append(ecosystems, entry.PackageEcosystem)
	}
	assert.Equal(t, []string{"bundler", "cargo", "npm"}, ecosystems)

	assert.Equal(t, "rails", result.Report(models.EcosystemBundler).Primary)
	assert.Equal(t, "async-runtime", result.Report(models.EcosystemCargo).Primary)
	assert.Equal(t, "react", result.Report(models.EcosystemNpm).Primary)
}

func TestScanDeterministic(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "requirements.txt", "django==4.2\ndjango-cors-headers==4.0.0\npytest-cov\n")
	writeManifest(t, root, "package.json", `{"dependencies": {"vue": "^3.4.0"}}`)

	opts := models.DefaultOptions(root)
	opts.Tier = models.TierPro

	first, err := New(opts).Scan()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := New(opts).Scan()
		require.NoError(t, err)
		assert.Equal(t, first.Config, again.Config)
		assert.Equal(t, first.Reports, again.Reports)
	}
}

func TestScanCompleteness(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "requirements.txt", "flask==2.3.0\n")
	writeManifest(t, root, "Gemfile", "# comments only\n")

	result, err := New(models.DefaultOptions(root)).Scan()
	require.NoError(t, err)

	// pip has a manifest and a dependency: exactly one entry. bundler's
	// manifest yielded nothing, so it is absent rather than empty.
	require.Len(t, result.Config.Updates, 1)
	assert.Equal(t, "pip", result.Config.Updates[0].PackageEcosystem)
}

func TestScanMalformedManifestIsSkippedNotFatal(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "package.json", "{not json")
	writeManifest(t, root, "requirements.txt", "requests==2.28.0\n")

	result, err := New(models.DefaultOptions(root)).Scan()
	require.NoError(t, err)
	require.Len(t, result.Config.Updates, 1)
	assert.Equal(t, "pip", result.Config.Updates[0].PackageEcosystem)
}

func TestScanUngroupedWhenNoFrameworkDetected(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "requirements.txt", "requests==2.28.0\nboto3\n")

	opts := models.DefaultOptions(root)
	opts.Tier = models.TierPro
	result, err := New(opts).Scan()
	require.NoError(t, err)

	require.Len(t, result.Config.Updates, 1)
	assert.Nil(t, result.Config.Updates[0].Groups)
}
