package domain

import "time"

// ItemType identifies which content collection an activity item came from.
type ItemType string

const (
	// TypePost marks items normalised from blog posts.
	TypePost ItemType = "post"

	// TypeProfile marks items normalised from community profiles.
	TypeProfile ItemType = "profile"

	// TypeProduct marks items normalised from product entries.
	TypeProduct ItemType = "product"
)

// IsValid reports whether the item type is one of the known collections.
func (t ItemType) IsValid() bool {
	switch t {
	case TypePost, TypeProfile, TypeProduct:
		return true
	}
	return false
}

// ActivityItem represents a single entry in the unified activity feed.
// It is the canonical representation after normalisation.
type ActivityItem struct {
	// Type identifies the source collection the item came from.
	Type ItemType

	// Title is the human-readable headline.
	Title string

	// Slug is the URL-friendly identifier within the source collection.
	Slug string

	// Excerpt is a short summary suitable for list rendering.
	// Always concrete, may be empty.
	Excerpt string

	// Date is the effective timestamp used to order the feed.
	// Items whose source carried no parseable timestamp hold the
	// zero time and sort to the end of the feed.
	Date time.Time

	// Image is an optional illustration URL or path. Empty means absent.
	Image string

	// Author is the display name of the item's author, when known.
	Author string

	// Category is the item's category. Posts carry their own category
	// (possibly empty); profiles and products carry the fixed
	// collection labels "profile" and "product".
	Category string

	// Tags holds the item's labels. Never nil after normalisation.
	Tags []string

	// ProductCategory preserves a product's own category, since
	// Category holds the fixed collection label for products.
	ProductCategory string

	// ProfileRole is the member's role, set only for profile items.
	ProfileRole string

	// License is the licence identifier, set only for product items.
	License string
}
