package models

import "fmt"

// Tier is the subscription level controlling whether grouped (premium) or
// ungrouped (basic) configuration is produced.
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Grouped reports whether this tier is entitled to grouped update entries.
func (t Tier) Grouped() bool {
	return t == TierPro || t == TierEnterprise
}

// ParseTier validates a tier string.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierFree, TierPro, TierEnterprise:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown tier %q (expected free, pro, or enterprise)", s)
}
