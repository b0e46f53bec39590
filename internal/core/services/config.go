package services

import (
	"sync"

	"github.com/copperline-studio/activityfeed/internal/core/ports/driven"
)

// ConfigStore holds the loader configuration the feed aggregates over.
// It is safe for concurrent use: merges, snapshots and resets may
// happen while queries read, though no cross-call ordering is promised.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg driven.Config
}

// NewConfigStore creates an empty configuration store.
// No loader is configured until Configure is called.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{}
}

// Configure merges the given configuration into the store. Non-nil
// loader fields replace their slot; nil fields leave the existing
// loader untouched. Configure never fails.
func (s *ConfigStore) Configure(cfg driven.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg.LoadBlogPosts != nil {
		s.cfg.LoadBlogPosts = cfg.LoadBlogPosts
	}
	if cfg.LoadProfiles != nil {
		s.cfg.LoadProfiles = cfg.LoadProfiles
	}
	if cfg.LoadProducts != nil {
		s.cfg.LoadProducts = cfg.LoadProducts
	}
}

// Config returns a snapshot of the current configuration. The snapshot
// is independent: assigning into it never affects the store.
func (s *ConfigStore) Config() driven.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Reset clears all three loader slots back to unconfigured.
func (s *ConfigStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = driven.Config{}
}
