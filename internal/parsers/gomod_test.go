package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goModFixture = `module example.com/svc

go 1.22

require (
	github.com/spf13/cobra v1.8.0
	gopkg.in/yaml.v3 v3.0.1
)

require github.com/inconshreveable/mousetrap v1.1.0 // indirect
`

func TestGoModDirectRequires(t *testing.T) {
	deps, err := (&GoModParser{}).Parse("go.mod", []byte(goModFixture))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"github.com/spf13/cobra": "v1.8.0",
		"gopkg.in/yaml.v3":       "v3.0.1",
	}, depMap(deps))
	assert.Equal(t, 6, deps[0].Line)
}

func TestGoModIncludeIndirect(t *testing.T) {
	deps, err := (&GoModParser{IncludeIndirect: true}).Parse("go.mod", []byte(goModFixture))
	require.NoError(t, err)
	assert.Contains(t, depMap(deps), "github.com/inconshreveable/mousetrap")
	assert.Len(t, deps, 3)
}

func TestGoModMalformed(t *testing.T) {
	_, err := (&GoModParser{}).Parse("go.mod", []byte("module\nrequire ("))
	assert.Error(t, err)
}

func TestGoModNoRequires(t *testing.T) {
	deps, err := (&GoModParser{}).Parse("go.mod", []byte("module example.com/empty\n\ngo 1.22\n"))
	require.NoError(t, err)
	assert.Empty(t, deps)
}
