package driving

import (
	"context"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// FeedService provides the read-only activity feed to external actors.
//
// Every operation rebuilds the feed from the configured loaders on each
// call and absorbs loader failures, so none of them returns an error.
// The optional limit caps the result when provided; an omitted limit
// returns everything the operation matches (RecentActivity defaults to
// its own cap instead). A provided limit of zero or less yields an
// empty result.
type FeedService interface {
	// RecentActivity returns the newest items across all collections,
	// capped at 10 when no limit is given.
	RecentActivity(ctx context.Context, limit ...int) []domain.ActivityItem

	// ActivityByType returns items from a single collection, newest first.
	ActivityByType(ctx context.Context, itemType domain.ItemType, limit ...int) []domain.ActivityItem

	// ActivityByCategory returns items whose category or product
	// category equals the given category exactly.
	ActivityByCategory(ctx context.Context, category string, limit ...int) []domain.ActivityItem

	// ActivityByTag returns items carrying the exact tag.
	ActivityByTag(ctx context.Context, tag string, limit ...int) []domain.ActivityItem

	// SearchActivity returns items matching the query case-insensitively
	// in title, excerpt, author or tags. A blank query matches nothing.
	SearchActivity(ctx context.Context, query string, limit ...int) []domain.ActivityItem
}
