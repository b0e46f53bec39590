package services

import (
	"context"
	"sort"
	"strings"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
	"github.com/copperline-studio/activityfeed/internal/core/ports/driving"
	"github.com/copperline-studio/activityfeed/internal/logger"
	"github.com/copperline-studio/activityfeed/internal/normalisers"
)

// defaultRecentLimit caps RecentActivity when no limit is given.
const defaultRecentLimit = 10

// Ensure FeedService implements the driving port.
var _ driving.FeedService = (*FeedService)(nil)

// FeedService aggregates the configured content sources into one
// date-descending activity feed and answers the read-only queries over
// it. Every query rebuilds the feed from the loaders; nothing is
// cached between calls, so configuration changes take effect
// immediately and loader output is never stale.
type FeedService struct {
	config *ConfigStore
}

// NewFeedService creates a feed service reading loaders from config.
func NewFeedService(config *ConfigStore) *FeedService {
	return &FeedService{config: config}
}

// RecentActivity returns the newest items across all collections,
// capped at 10 when no limit is given.
func (s *FeedService) RecentActivity(ctx context.Context, limit ...int) []domain.ActivityItem {
	n := defaultRecentLimit
	if len(limit) > 0 {
		n = limit[0]
	}
	return capItems(s.aggregate(ctx), n)
}

// ActivityByType returns items from a single collection, newest first.
func (s *FeedService) ActivityByType(ctx context.Context, itemType domain.ItemType, limit ...int) []domain.ActivityItem {
	matched := make([]domain.ActivityItem, 0)
	for _, item := range s.aggregate(ctx) {
		if item.Type == itemType {
			matched = append(matched, item)
		}
	}
	return applyLimit(matched, limit)
}

// ActivityByCategory returns items whose category or product category
// equals the given category exactly. Matching is case-sensitive, and
// an empty category matches nothing rather than every item without one.
func (s *FeedService) ActivityByCategory(ctx context.Context, category string, limit ...int) []domain.ActivityItem {
	matched := make([]domain.ActivityItem, 0)
	if category == "" {
		return applyLimit(matched, limit)
	}
	for _, item := range s.aggregate(ctx) {
		if item.Category == category || item.ProductCategory == category {
			matched = append(matched, item)
		}
	}
	return applyLimit(matched, limit)
}

// ActivityByTag returns items carrying the exact tag, case-sensitive.
func (s *FeedService) ActivityByTag(ctx context.Context, tag string, limit ...int) []domain.ActivityItem {
	matched := make([]domain.ActivityItem, 0)
	for _, item := range s.aggregate(ctx) {
		for _, t := range item.Tags {
			if t == tag {
				matched = append(matched, item)
				break
			}
		}
	}
	return applyLimit(matched, limit)
}

// SearchActivity returns items matching the query case-insensitively in
// title, excerpt, author or any tag. An item matching several fields
// appears once. A blank query returns nothing without touching the
// loaders.
func (s *FeedService) SearchActivity(ctx context.Context, query string, limit ...int) []domain.ActivityItem {
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty search query, returning no results")
		return []domain.ActivityItem{}
	}

	needle := strings.ToLower(query)
	matched := make([]domain.ActivityItem, 0)
	for _, item := range s.aggregate(ctx) {
		if matchesQuery(item, needle) {
			matched = append(matched, item)
		}
	}

	logger.Debug("Search for %q matched %d items", query, len(matched))
	return applyLimit(matched, limit)
}

// aggregate invokes every configured loader once, normalises whatever
// came back and returns the merged feed sorted newest first. A failing
// loader contributes nothing, not even partially; the other sources
// are unaffected.
func (s *FeedService) aggregate(ctx context.Context) []domain.ActivityItem {
	cfg := s.config.Config()
	items := make([]domain.ActivityItem, 0)

	if cfg.LoadBlogPosts != nil {
		posts, err := cfg.LoadBlogPosts(ctx)
		if err != nil {
			logger.Warn("Blog post loader failed: %v", err)
		} else {
			logger.Debug("Loaded %d blog posts", len(posts))
			for _, post := range posts {
				if item, ok := normalisers.Post(post); ok {
					items = append(items, item)
				}
			}
		}
	}

	if cfg.LoadProfiles != nil {
		profiles, err := cfg.LoadProfiles(ctx)
		if err != nil {
			logger.Warn("Profile loader failed: %v", err)
		} else {
			logger.Debug("Loaded %d profiles", len(profiles))
			for _, profile := range profiles {
				items = append(items, normalisers.Profile(profile))
			}
		}
	}

	if cfg.LoadProducts != nil {
		products, err := cfg.LoadProducts(ctx)
		if err != nil {
			logger.Warn("Product loader failed: %v", err)
		} else {
			logger.Debug("Loaded %d products", len(products))
			for _, product := range products {
				items = append(items, normalisers.Product(product))
			}
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	logger.Debug("Aggregated %d feed items", len(items))
	return items
}

// matchesQuery reports whether the lowercased needle occurs in the
// item's title, excerpt, author or any tag.
func matchesQuery(item domain.ActivityItem, needle string) bool {
	if strings.Contains(strings.ToLower(item.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Excerpt), needle) {
		return true
	}
	if item.Author != "" && strings.Contains(strings.ToLower(item.Author), needle) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// capItems bounds the result to the first n items. A non-positive n
// yields an empty result; zero is a real bound, not "unset".
func capItems(items []domain.ActivityItem, n int) []domain.ActivityItem {
	if n <= 0 {
		return []domain.ActivityItem{}
	}
	if n >= len(items) {
		return items
	}
	return items[:n]
}

// applyLimit applies an optional caller limit; absent means unbounded.
func applyLimit(items []domain.ActivityItem, limit []int) []domain.ActivityItem {
	if len(limit) == 0 {
		return items
	}
	return capItems(items, limit[0])
}
