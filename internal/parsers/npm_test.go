package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackwatch/internal/models"
)

func TestPackageJSONDependencies(t *testing.T) {
	content := []byte(`{
  "name": "web",
  "dependencies": {
    "react": "^18.2.0",
    "react-dom": "^18.2.0",
    "@tanstack/react-query": "^5.0.0"
  },
  "devDependencies": {
    "jest": "^29.0.0",
    "typescript": "~5.4.0"
  }
}`)
	deps, err := (&NpmPackageJSONParser{}).Parse("package.json", content)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"react":                  "^18.2.0",
		"react-dom":              "^18.2.0",
		"@tanstack/react-query":  "^5.0.0",
		"jest":                   "^29.0.0",
		"typescript":             "~5.4.0",
	}, depMap(deps))
}

func TestPackageJSONDevOverridesProd(t *testing.T) {
	content := []byte(`{
  "dependencies": {"vitest": "^1.0.0"},
  "devDependencies": {"vitest": "^2.0.0"}
}`)
	deps, err := (&NpmPackageJSONParser{}).Parse("package.json", content)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "^2.0.0", deps[0].Constraint)
}

func TestPackageJSONMalformed(t *testing.T) {
	_, err := (&NpmPackageJSONParser{}).Parse("package.json", []byte("{not json"))
	assert.Error(t, err)
}

func TestForManifestDispatch(t *testing.T) {
	for eco, filename := range map[string]string{
		"pip":     "requirements.txt",
		"cargo":   "Cargo.toml",
		"bundler": "Gemfile",
		"npm":     "package.json",
		"gomod":   "go.mod",
	} {
		p := ForManifest(models.Ecosystem(eco), filename)
		require.NotNil(t, p, "no parser for %s/%s", eco, filename)
		assert.True(t, p.CanParse(filename))
	}
	assert.Nil(t, ForManifest("npm", "Cargo.toml"))
}
