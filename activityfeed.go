// Package activityfeed aggregates heterogeneous content collections
// (blog posts, community profiles, product entries) into one unified,
// date-sorted activity feed and answers read-only queries over it.
//
// Content arrives through caller-supplied loader functions; the feed
// itself performs no I/O and caches nothing. Every query invokes the
// configured loaders afresh, normalises their raw items into the
// canonical Item shape and sorts the merged feed newest first. A
// loader that fails simply contributes no items.
//
// The package offers two surfaces: an explicit Service with its own
// configuration, and package-level functions over a process-wide
// default service for callers that want the one-liner experience.
package activityfeed

import (
	"context"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
	"github.com/copperline-studio/activityfeed/internal/core/ports/driven"
	"github.com/copperline-studio/activityfeed/internal/core/services"
)

// Canonical feed types, re-exported from the internal core.
type (
	// Item is one entry of the unified activity feed.
	Item = domain.ActivityItem

	// ItemType identifies which collection an item came from.
	ItemType = domain.ItemType

	// BlogPostItem is the raw blog post shape accepted from loaders.
	BlogPostItem = domain.BlogPostItem

	// ProfileItem is the raw community profile shape accepted from loaders.
	ProfileItem = domain.ProfileItem

	// ProductItem is the raw product shape accepted from loaders.
	ProductItem = domain.ProductItem

	// PostAuthor is a blog post's author, by name or structured.
	PostAuthor = domain.PostAuthor
)

// Collection discriminants.
const (
	TypePost    = domain.TypePost
	TypeProfile = domain.TypeProfile
	TypeProduct = domain.TypeProduct
)

// Loader contracts and their configuration.
type (
	// Config holds up to three loader functions; any subset may be set.
	Config = driven.Config

	// BlogLoader supplies raw blog posts.
	BlogLoader = driven.BlogLoader

	// ProfileLoader supplies raw community profiles.
	ProfileLoader = driven.ProfileLoader

	// ProductLoader supplies raw product entries.
	ProductLoader = driven.ProductLoader
)

// Service is an activity feed with its own loader configuration.
// Create one per content universe; it is safe for concurrent use.
type Service struct {
	config *services.ConfigStore
	feed   *services.FeedService
}

// NewService creates a feed service over the given configuration.
// Loaders left nil stay unconfigured and contribute nothing.
func NewService(cfg Config) *Service {
	store := services.NewConfigStore()
	store.Configure(cfg)

	return &Service{
		config: store,
		feed:   services.NewFeedService(store),
	}
}

// Configure merges the given configuration into the service. Non-nil
// loaders replace their slot; nil loaders leave the slot untouched.
func (s *Service) Configure(cfg Config) {
	s.config.Configure(cfg)
}

// Config returns an independent snapshot of the current configuration.
func (s *Service) Config() Config {
	return s.config.Config()
}

// Reset clears all configured loaders.
func (s *Service) Reset() {
	s.config.Reset()
}

// RecentActivity returns the newest items across all collections,
// capped at 10 when no limit is given.
func (s *Service) RecentActivity(ctx context.Context, limit ...int) []Item {
	return s.feed.RecentActivity(ctx, limit...)
}

// ActivityByType returns items from a single collection, newest first.
func (s *Service) ActivityByType(ctx context.Context, itemType ItemType, limit ...int) []Item {
	return s.feed.ActivityByType(ctx, itemType, limit...)
}

// ActivityByCategory returns items whose category or product category
// equals the given category exactly.
func (s *Service) ActivityByCategory(ctx context.Context, category string, limit ...int) []Item {
	return s.feed.ActivityByCategory(ctx, category, limit...)
}

// ActivityByTag returns items carrying the exact tag.
func (s *Service) ActivityByTag(ctx context.Context, tag string, limit ...int) []Item {
	return s.feed.ActivityByTag(ctx, tag, limit...)
}

// SearchActivity returns items matching the query case-insensitively
// in title, excerpt, author or tags. A blank query matches nothing.
func (s *Service) SearchActivity(ctx context.Context, query string, limit ...int) []Item {
	return s.feed.SearchActivity(ctx, query, limit...)
}

// defaultService backs the package-level functions. It reads its
// configuration at query time, so Configure/ResetConfig take effect
// immediately.
var defaultService = NewService(Config{})

// Configure merges the given configuration into the default service.
func Configure(cfg Config) {
	defaultService.Configure(cfg)
}

// CurrentConfig returns a snapshot of the default configuration.
func CurrentConfig() Config {
	return defaultService.Config()
}

// ResetConfig clears all loaders of the default service.
func ResetConfig() {
	defaultService.Reset()
}

// RecentActivity queries the default service for the newest items.
func RecentActivity(ctx context.Context, limit ...int) []Item {
	return defaultService.RecentActivity(ctx, limit...)
}

// ActivityByType queries the default service for one collection.
func ActivityByType(ctx context.Context, itemType ItemType, limit ...int) []Item {
	return defaultService.ActivityByType(ctx, itemType, limit...)
}

// ActivityByCategory queries the default service by category.
func ActivityByCategory(ctx context.Context, category string, limit ...int) []Item {
	return defaultService.ActivityByCategory(ctx, category, limit...)
}

// ActivityByTag queries the default service by tag.
func ActivityByTag(ctx context.Context, tag string, limit ...int) []Item {
	return defaultService.ActivityByTag(ctx, tag, limit...)
}

// SearchActivity searches the default service's feed.
func SearchActivity(ctx context.Context, query string, limit ...int) []Item {
	return defaultService.SearchActivity(ctx, query, limit...)
}
