package driven

import (
	"context"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// BlogLoader supplies the raw blog post collection.
// Implementations may read from disk, a database or anywhere else;
// the core only ever calls them and never retains the result.
type BlogLoader func(ctx context.Context) ([]domain.BlogPostItem, error)

// ProfileLoader supplies the raw community profile collection.
type ProfileLoader func(ctx context.Context) ([]domain.ProfileItem, error)

// ProductLoader supplies the raw product collection.
type ProductLoader func(ctx context.Context) ([]domain.ProductItem, error)

// Config holds the loader callbacks the feed aggregates over.
// Any subset may be set; an unset loader simply contributes nothing.
type Config struct {
	// LoadBlogPosts supplies blog posts, or nil when unconfigured.
	LoadBlogPosts BlogLoader

	// LoadProfiles supplies profiles, or nil when unconfigured.
	LoadProfiles ProfileLoader

	// LoadProducts supplies products, or nil when unconfigured.
	LoadProducts ProductLoader
}
