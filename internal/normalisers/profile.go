package normalisers

import (
	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// Profile converts a raw community profile into a feed item.
// Profiles are always included. The resolved display name serves as
// both title and author, so profile items are searchable by name.
func Profile(profile domain.ProfileItem) domain.ActivityItem {
	name := firstNonEmpty(profile.Name, profile.DisplayName, "Community Member")

	item := domain.ActivityItem{
		Type:        domain.TypeProfile,
		Title:       name,
		Slug:        profile.Slug,
		Excerpt:     profile.Bio,
		Date:        effectiveDate(profile.PublishedAt, profile.UpdatedAt, profile.JoinedDate),
		Image:       firstNonEmpty(profile.Avatar, profile.ImageURL),
		Author:      name,
		Category:    "profile",
		ProfileRole: profile.Role,
	}

	// Tags distinguish absent from present-but-empty: an empty tag
	// list still shadows interests.
	switch {
	case profile.Tags != nil:
		item.Tags = copyTags(profile.Tags)
	case profile.Interests != nil:
		item.Tags = copyTags(profile.Interests)
	default:
		item.Tags = []string{}
	}

	return item
}
