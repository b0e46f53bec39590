package normalisers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

func TestProfile_FullProfile(t *testing.T) {
	item := Profile(domain.ProfileItem{
		Name:        "Grace Hopper",
		DisplayName: "Amazing Grace",
		Slug:        "grace-hopper",
		Bio:         "Compiler pioneer.",
		Role:        "maintainer",
		Avatar:      "/img/grace.png",
		ImageURL:    "/img/grace-alt.png",
		PublishedAt: "2023-11-05",
		UpdatedAt:   "2024-01-12",
		JoinedDate:  "2020-06-01",
		Tags:        []string{"compilers"},
		Interests:   []string{"mathematics"},
	})

	assert.Equal(t, domain.TypeProfile, item.Type)
	assert.Equal(t, "Grace Hopper", item.Title)
	assert.Equal(t, "Grace Hopper", item.Author)
	assert.Equal(t, "grace-hopper", item.Slug)
	assert.Equal(t, "Compiler pioneer.", item.Excerpt)
	assert.Equal(t, time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), item.Date)
	assert.Equal(t, "/img/grace.png", item.Image)
	assert.Equal(t, "profile", item.Category)
	assert.Equal(t, "maintainer", item.ProfileRole)
	assert.Equal(t, []string{"compilers"}, item.Tags)
}

func TestProfile_NameResolution(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.ProfileItem
		expected string
	}{
		{
			name:     "name preferred",
			profile:  domain.ProfileItem{Name: "Grace Hopper", DisplayName: "Amazing Grace"},
			expected: "Grace Hopper",
		},
		{
			name:     "display name second",
			profile:  domain.ProfileItem{DisplayName: "Amazing Grace"},
			expected: "Amazing Grace",
		},
		{
			name:     "anonymous fallback",
			profile:  domain.ProfileItem{Slug: "anon"},
			expected: "Community Member",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Profile(tt.profile)

			// The resolved name serves as both title and author.
			assert.Equal(t, tt.expected, item.Title)
			assert.Equal(t, tt.expected, item.Author)
		})
	}
}

func TestProfile_DateFallbacks(t *testing.T) {
	// PublishedAt wins.
	item := Profile(domain.ProfileItem{
		PublishedAt: "2023-11-05",
		UpdatedAt:   "2024-01-12",
		JoinedDate:  "2020-06-01",
	})
	assert.Equal(t, time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), item.Date)

	// UpdatedAt second.
	item = Profile(domain.ProfileItem{UpdatedAt: "2024-01-12", JoinedDate: "2020-06-01"})
	assert.Equal(t, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), item.Date)

	// JoinedDate last.
	item = Profile(domain.ProfileItem{JoinedDate: "2020-06-01"})
	assert.Equal(t, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), item.Date)

	// Nothing set: the item dates from normalisation time.
	item = Profile(domain.ProfileItem{})
	assert.WithinDuration(t, time.Now(), item.Date, 2*time.Second)
}

func TestProfile_UnparseableDateIsFinal(t *testing.T) {
	// A garbage PublishedAt is still the chosen candidate; the valid
	// UpdatedAt behind it must not be consulted.
	item := Profile(domain.ProfileItem{
		PublishedAt: "whenever",
		UpdatedAt:   "2024-01-12",
	})

	assert.True(t, item.Date.IsZero())
}

func TestProfile_ImageFallback(t *testing.T) {
	item := Profile(domain.ProfileItem{Avatar: "a.png", ImageURL: "i.png"})
	assert.Equal(t, "a.png", item.Image)

	item = Profile(domain.ProfileItem{ImageURL: "i.png"})
	assert.Equal(t, "i.png", item.Image)

	item = Profile(domain.ProfileItem{})
	assert.Equal(t, "", item.Image)
}

func TestProfile_TagResolution(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.ProfileItem
		expected []string
	}{
		{
			name:     "tags preferred",
			profile:  domain.ProfileItem{Tags: []string{"go"}, Interests: []string{"rust"}},
			expected: []string{"go"},
		},
		{
			name:     "empty tags still shadow interests",
			profile:  domain.ProfileItem{Tags: []string{}, Interests: []string{"rust"}},
			expected: []string{},
		},
		{
			name:     "interests when tags absent",
			profile:  domain.ProfileItem{Interests: []string{"rust"}},
			expected: []string{"rust"},
		},
		{
			name:     "neither set",
			profile:  domain.ProfileItem{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Profile(tt.profile)
			assert.NotNil(t, item.Tags)
			assert.Equal(t, tt.expected, item.Tags)
		})
	}
}

func TestProfile_NoProductFields(t *testing.T) {
	item := Profile(domain.ProfileItem{Name: "Grace Hopper"})

	assert.Empty(t, item.ProductCategory)
	assert.Empty(t, item.License)
}
