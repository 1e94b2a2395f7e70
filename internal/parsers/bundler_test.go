package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGemfileBasic(t *testing.T) {
	content := []byte(`
source 'https://rubygems.org'

# Core framework
gem 'rails', '~> 7.1'
gem "pg", ">= 1.5"
gem 'puma'

group :test do
  gem 'rspec-rails', '~> 6.1'
  gem 'factory_bot_rails'
end
`)
	deps, err := (&GemfileParser{}).Parse("Gemfile", content)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"rails":             "~> 7.1",
		"pg":                ">= 1.5",
		"puma":              "",
		"rspec-rails":       "~> 6.1",
		"factory_bot_rails": "",
	}, depMap(deps))
}

func TestGemfileIgnoresNonGemLines(t *testing.T) {
	content := []byte(`
ruby '3.3.0'
# gem 'commented-out'
gemspec
gem 'rake', '~> 13.0', require: false
`)
	deps, err := (&GemfileParser{}).Parse("Gemfile", content)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "rake", deps[0].Name)
	assert.Equal(t, "~> 13.0", deps[0].Constraint)
	assert.Equal(t, 5, deps[0].Line)
}

func TestGemfileLastWriteWins(t *testing.T) {
	content := []byte("gem 'rails', '~> 7.0'\ngem 'rails', '~> 7.1'\n")
	deps, err := (&GemfileParser{}).Parse("Gemfile", content)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "~> 7.1", deps[0].Constraint)
}
