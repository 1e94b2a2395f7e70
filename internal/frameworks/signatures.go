// Package frameworks detects frameworks from extracted dependency names by
// matching them against a static signature registry.
package frameworks

import "stackwatch/internal/models"

// Framework categories. App categories can produce a primary framework;
// tooling categories sit below the primary threshold.
const (
	CategoryWeb           = "web"
	CategoryAsync         = "async"
	CategorySerialization = "serialization"
	CategoryData          = "data"
	CategoryTesting       = "testing"
)

// PrimaryThreshold is the minimum signature priority eligible for primary
// designation. Tooling signatures stay below it on purpose: a project that is
// only pytest and numpy has no primary framework.
const PrimaryThreshold = 50

// Signature describes one framework or tooling category: the package-name
// patterns that indicate its use, and its rank when electing a primary.
// Patterns are exact literals or prefix wildcards ("pytest-*").
type Signature struct {
	Framework string
	Category  string
	Priority  int // Higher wins the primary election; increments of 10 leave room
	Patterns  []string
}

// registry maps each ecosystem to its ordered signature list. Built once at
// startup and never mutated; Signatures hands out the backing slices on the
// understanding that callers treat them as read-only.
var registry = map[models.Ecosystem][]Signature{
	models.EcosystemPip: {
		{Framework: "django", Category: CategoryWeb, Priority: 200,
			Patterns: []string{"django", "django-*"}},
		{Framework: "fastapi", Category: CategoryWeb, Priority: 190,
			Patterns: []string{"fastapi", "starlette", "pydantic", "uvicorn"}},
		{Framework: "flask", Category: CategoryWeb, Priority: 180,
			Patterns: []string{"flask", "flask-*"}},
		{Framework: "data-tooling", Category: CategoryData, Priority: 30,
			Patterns: []string{"numpy", "pandas", "polars", "scipy", "scikit-learn", "matplotlib"}},
		{Framework: "testing", Category: CategoryTesting, Priority: 20,
			Patterns: []string{"pytest", "pytest-*", "tox", "coverage", "hypothesis"}},
	},
	models.EcosystemCargo: {
		{Framework: "actix", Category: CategoryWeb, Priority: 200,
			Patterns: []string{"actix-web", "actix-*"}},
		{Framework: "async-runtime", Category: CategoryAsync, Priority: 100,
			Patterns: []string{"tokio", "tokio-*", "async-std", "futures"}},
		{Framework: "serde", Category: CategorySerialization, Priority: 40,
			Patterns: []string{"serde", "serde_*", "serde-*"}},
	},
	models.EcosystemBundler: {
		{Framework: "rails", Category: CategoryWeb, Priority: 200,
			Patterns: []string{"rails", "railties", "activerecord", "actionpack", "activesupport"}},
		{Framework: "testing", Category: CategoryTesting, Priority: 20,
			Patterns: []string{"rspec", "rspec-*", "minitest", "capybara", "factory_bot_rails"}},
	},
	models.EcosystemNpm: {
		{Framework: "react", Category: CategoryWeb, Priority: 200,
			Patterns: []string{"react", "react-dom", "react-*", "next"}},
		{Framework: "vue", Category: CategoryWeb, Priority: 190,
			Patterns: []string{"vue", "vue-*", "@vue/*", "nuxt"}},
		{Framework: "angular", Category: CategoryWeb, Priority: 180,
			Patterns: []string{"@angular/*", "zone.js"}},
		{Framework: "express", Category: CategoryWeb, Priority: 120,
			Patterns: []string{"express", "express-*"}},
		{Framework: "testing", Category: CategoryTesting, Priority: 20,
			Patterns: []string{"jest", "jest-*", "mocha", "chai", "vitest", "@testing-library/*"}},
	},
	models.EcosystemGoMod: {
		{Framework: "gin", Category: CategoryWeb, Priority: 180,
			Patterns: []string{"github.com/gin-gonic/gin"}},
		{Framework: "chi", Category: CategoryWeb, Priority: 170,
			Patterns: []string{"github.com/go-chi/chi*"}},
		{Framework: "testing", Category: CategoryTesting, Priority: 20,
			Patterns: []string{"github.com/stretchr/testify", "github.com/onsi/*"}},
	},
}

// Signatures returns the ordered signature list for an ecosystem.
func Signatures(eco models.Ecosystem) []Signature {
	return registry[eco]
}

// signatureFor looks up a signature by framework id within an ecosystem.
func signatureFor(eco models.Ecosystem, framework string) (Signature, bool) {
	for _, sig := range registry[eco] {
		if sig.Framework == framework {
			return sig, true
		}
	}
	return Signature{}, false
}
