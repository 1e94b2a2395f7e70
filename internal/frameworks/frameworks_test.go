package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackwatch/internal/models"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"django", "django", true},
		{"django", "django-cors-headers", false},
		{"django-*", "django-cors-headers", true},
		{"pytest-*", "pytest-cov", true},
		{"pytest-*", "pytest", false},
		{"@angular/*", "@angular/core", true},
		{"@angular/*", "@angularish", false},
		{"serde_*", "serde_json", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchPattern(tt.pattern, tt.name), "%s vs %s", tt.pattern, tt.name)
	}
}

func findFramework(t *testing.T, detected []models.DetectedFramework, id string) models.DetectedFramework {
	t.Helper()
	for _, fw := range detected {
		if fw.Framework == id {
			return fw
		}
	}
	t.Fatalf("framework %s not detected", id)
	return models.DetectedFramework{}
}

func TestDetectDjangoWithTooling(t *testing.T) {
	names := []string{"django", "django-cors-headers", "pytest", "pytest-cov", "requests"}
	detected := Detect(models.EcosystemPip, names)

	dj := findFramework(t, detected, "django")
	assert.Equal(t, []string{"django", "django-cors-headers"}, dj.Packages)
	assert.Equal(t, 2, dj.MatchCount)

	tooling := findFramework(t, detected, "testing")
	assert.Equal(t, []string{"pytest", "pytest-cov"}, tooling.Packages)

	// requests matches nothing; no signature should claim it
	for _, fw := range detected {
		assert.NotContains(t, fw.Packages, "requests")
	}
}

func TestDetectZeroMatchesProducesNothing(t *testing.T) {
	assert.Empty(t, Detect(models.EcosystemPip, []string{"requests", "boto3"}))
	assert.Empty(t, Detect(models.EcosystemNpm, nil))
}

func TestDetectDeduplicatesWithinSignature(t *testing.T) {
	// actix-web satisfies both the literal and the wildcard pattern
	detected := Detect(models.EcosystemCargo, []string{"actix-web"})
	actix := findFramework(t, detected, "actix")
	assert.Equal(t, []string{"actix-web"}, actix.Packages)
	assert.Equal(t, 1, actix.MatchCount)
}

func TestMarkPrimaryPriorityWins(t *testing.T) {
	// django (200) outranks flask (180) regardless of match counts
	detected := Detect(models.EcosystemPip, []string{"django", "flask", "flask-login", "flask-sqlalchemy"})
	primary := MarkPrimary(models.EcosystemPip, detected)
	assert.Equal(t, "django", primary)
	assert.True(t, findFramework(t, detected, "django").Primary)
	assert.False(t, findFramework(t, detected, "flask").Primary)
}

func TestMarkPrimaryNoneAboveThreshold(t *testing.T) {
	detected := Detect(models.EcosystemPip, []string{"pytest", "numpy"})
	require.NotEmpty(t, detected)
	assert.Equal(t, "", MarkPrimary(models.EcosystemPip, detected))
	for _, fw := range detected {
		assert.False(t, fw.Primary)
	}
}

func TestMarkPrimaryDeterministic(t *testing.T) {
	names := []string{"tokio", "serde", "serde_json"}
	for i := 0; i < 10; i++ {
		detected := Detect(models.EcosystemCargo, names)
		assert.Equal(t, "async-runtime", MarkPrimary(models.EcosystemCargo, detected))
	}
}

func TestRegistryCoversAllEcosystems(t *testing.T) {
	for _, eco := range models.AllEcosystems {
		assert.NotEmpty(t, Signatures(eco), "no signatures for %s", eco)
	}
}
