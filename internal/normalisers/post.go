package normalisers

import (
	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// Post converts a raw blog post into a feed item. The boolean is false
// when the post is hidden from the feed: published is explicitly false,
// or the post is marked as a draft. An unset published flag passes.
func Post(post domain.BlogPostItem) (domain.ActivityItem, bool) {
	if post.Published != nil && !*post.Published {
		return domain.ActivityItem{}, false
	}
	if post.Draft {
		return domain.ActivityItem{}, false
	}

	item := domain.ActivityItem{
		Type:    domain.TypePost,
		Title:   firstNonEmpty(post.Title, post.Slug),
		Slug:    post.Slug,
		Excerpt: firstNonEmpty(post.Excerpt, post.Description),
		Date:    effectiveDate(post.Date, post.PublishedAt),
		Image:   firstNonEmpty(post.FeaturedImage, post.CoverImage, post.HeroImage),
		Author:  postAuthor(post.Author),
		Tags:    copyTags(post.Tags),
	}

	// A multi-category list wins over the single category field.
	if len(post.Categories) > 0 {
		item.Category = post.Categories[0]
	} else {
		item.Category = post.Category
	}

	return item, true
}

// postAuthor resolves the author display name. Posts without a usable
// author name are attributed to "Unknown".
func postAuthor(author *domain.PostAuthor) string {
	if author != nil && author.Name != "" {
		return author.Name
	}
	return "Unknown"
}
