// Package license resolves the subscription tier for a run. It never
// validates license keys or talks to a licensing service; it only reads an
// explicit value, the environment, or a locally stored activation record, in
// that order, falling back to the free tier.
package license

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"stackwatch/internal/models"
)

// EnvTier is the environment variable consulted when no explicit tier is
// given.
const EnvTier = "STACKWATCH_TIER"

// DefaultTTL is how long a stored activation stays valid. After expiry the
// resolver falls back to the free tier until the user activates again.
const DefaultTTL = 30 * 24 * time.Hour

const activationFile = "activation.json"

// Store persists the activation record under the user config directory
type Store struct {
	Dir string
	TTL time.Duration
}

// activation is the on-disk record
type activation struct {
	Tier        models.Tier `json:"tier"`
	ActivatedAt time.Time   `json:"activated_at"`
}

// NewStore creates a store rooted at ~/.config/stackwatch
func NewStore(ttl time.Duration) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(configDir, "stackwatch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Store{Dir: dir, TTL: ttl}, nil
}

// Save stores an activation record for the given tier
func (s *Store) Save(tier models.Tier) error {
	data, err := json.Marshal(activation{Tier: tier, ActivatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, activationFile), data, 0600)
}

// Load returns the stored tier if a valid, unexpired activation exists
func (s *Store) Load() (models.Tier, bool) {
	data, err := os.ReadFile(filepath.Join(s.Dir, activationFile))
	if err != nil {
		return "", false
	}

	var rec activation
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", false
	}
	if _, err := models.ParseTier(string(rec.Tier)); err != nil {
		return "", false
	}
	if time.Since(rec.ActivatedAt) > s.TTL {
		return "", false
	}
	return rec.Tier, true
}

// Clear removes the stored activation
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.Dir, activationFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Resolve picks the tier for this run: an explicit value wins, then the
// environment, then a stored activation, then free. A nil store skips the
// stored lookup.
func Resolve(explicit string, store *Store) (models.Tier, error) {
	if explicit != "" {
		return models.ParseTier(explicit)
	}
	if env := os.Getenv(EnvTier); env != "" {
		return models.ParseTier(env)
	}
	if store != nil {
		if tier, ok := store.Load(); ok {
			return tier, nil
		}
	}
	return models.TierFree, nil
}
