package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// --- Test helpers ---

func writeCollection(t *testing.T, name, content string) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "activityfeed-json-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// --- Tests ---

func TestPosts_Load(t *testing.T) {
	path := writeCollection(t, "posts.json", `[
		{
			"title": "Launch Day",
			"slug": "launch-day",
			"excerpt": "We shipped.",
			"description": "The longer story.",
			"date": "2025-01-15",
			"publishedAt": "2025-01-14T09:00:00Z",
			"featuredImage": "/img/launch.png",
			"coverImage": "/img/cover.png",
			"heroImage": "/img/hero.png",
			"category": "news",
			"categories": ["announcements", "releases"],
			"tags": ["launch", "v1"],
			"author": {"name": "Jane Doe"},
			"published": true,
			"draft": false
		}
	]`)

	posts, err := NewPosts(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, "Launch Day", post.Title)
	assert.Equal(t, "launch-day", post.Slug)
	assert.Equal(t, "We shipped.", post.Excerpt)
	assert.Equal(t, "The longer story.", post.Description)
	assert.Equal(t, "2025-01-15", post.Date)
	assert.Equal(t, "2025-01-14T09:00:00Z", post.PublishedAt)
	assert.Equal(t, "/img/launch.png", post.FeaturedImage)
	assert.Equal(t, "news", post.Category)
	assert.Equal(t, []string{"announcements", "releases"}, post.Categories)
	assert.Equal(t, []string{"launch", "v1"}, post.Tags)
	require.NotNil(t, post.Author)
	assert.Equal(t, "Jane Doe", post.Author.Name)
	require.NotNil(t, post.Published)
	assert.True(t, *post.Published)
}

func TestPosts_AuthorVariants(t *testing.T) {
	tests := []struct {
		name     string
		author   string
		wantNil  bool
		wantName string
	}{
		{name: "object", author: `{"name": "Jane Doe"}`, wantName: "Jane Doe"},
		{name: "string", author: `"Grace Hopper"`, wantName: "Grace Hopper"},
		{name: "null", author: `null`, wantNil: true},
		{name: "empty object", author: `{}`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCollection(t, "posts.json", `[{"title": "Post", "author": `+tt.author+`}]`)

			posts, err := NewPosts(path).Load(context.Background())
			require.NoError(t, err)
			require.Len(t, posts, 1)

			if tt.wantNil {
				assert.Nil(t, posts[0].Author)
			} else {
				require.NotNil(t, posts[0].Author)
				assert.Equal(t, tt.wantName, posts[0].Author.Name)
			}
		})
	}
}

func TestPosts_AbsentAuthor(t *testing.T) {
	path := writeCollection(t, "posts.json", `[{"title": "Anonymous"}]`)

	posts, err := NewPosts(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Nil(t, posts[0].Author)
}

func TestPosts_InvalidAuthor(t *testing.T) {
	path := writeCollection(t, "posts.json", `[{"title": "Post", "author": 42}]`)

	_, err := NewPosts(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}

func TestPosts_PublishedAbsentStaysNil(t *testing.T) {
	path := writeCollection(t, "posts.json", `[{"title": "Post"}]`)

	posts, err := NewPosts(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Nil(t, posts[0].Published)
}

func TestPosts_ItemsEnvelope(t *testing.T) {
	path := writeCollection(t, "posts.json", `{"items": [{"title": "Wrapped"}]}`)

	posts, err := NewPosts(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Wrapped", posts[0].Title)
}

func TestPosts_EnvelopeWithoutItems(t *testing.T) {
	path := writeCollection(t, "posts.json", `{"posts": []}`)

	_, err := NewPosts(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}

func TestPosts_InvalidJSON(t *testing.T) {
	path := writeCollection(t, "posts.json", `[{"title": "Broken"`)

	_, err := NewPosts(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}

func TestPosts_MissingFile(t *testing.T) {
	_, err := NewPosts("/nonexistent/posts.json").Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestPosts_EmptyPath(t *testing.T) {
	_, err := NewPosts("").Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPosts_CancelledContext(t *testing.T) {
	path := writeCollection(t, "posts.json", `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPosts(path).Load(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProfiles_Load(t *testing.T) {
	path := writeCollection(t, "profiles.json", `[
		{
			"name": "Grace Hopper",
			"displayName": "Admiral Grace",
			"slug": "grace-hopper",
			"bio": "Compiler pioneer.",
			"role": "Contributor",
			"avatar": "/img/grace.png",
			"imageUrl": "/img/grace-alt.png",
			"publishedAt": "2025-04-01T00:00:00Z",
			"updatedAt": "2025-04-02T00:00:00Z",
			"joinedDate": "2024-12-01",
			"tags": ["compilers"],
			"interests": ["languages"]
		}
	]`)

	profiles, err := NewProfiles(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	profile := profiles[0]
	assert.Equal(t, "Grace Hopper", profile.Name)
	assert.Equal(t, "Admiral Grace", profile.DisplayName)
	assert.Equal(t, "grace-hopper", profile.Slug)
	assert.Equal(t, "Compiler pioneer.", profile.Bio)
	assert.Equal(t, "Contributor", profile.Role)
	assert.Equal(t, "/img/grace.png", profile.Avatar)
	assert.Equal(t, "/img/grace-alt.png", profile.ImageURL)
	assert.Equal(t, "2025-04-01T00:00:00Z", profile.PublishedAt)
	assert.Equal(t, "2025-04-02T00:00:00Z", profile.UpdatedAt)
	assert.Equal(t, "2024-12-01", profile.JoinedDate)
	assert.Equal(t, []string{"compilers"}, profile.Tags)
	assert.Equal(t, []string{"languages"}, profile.Interests)
}

func TestProfiles_TagsNilVersusEmpty(t *testing.T) {
	path := writeCollection(t, "profiles.json", `[
		{"name": "Absent Tags", "interests": ["go"]},
		{"name": "Empty Tags", "tags": [], "interests": ["go"]}
	]`)

	profiles, err := NewProfiles(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Nil(t, profiles[0].Tags)
	require.NotNil(t, profiles[1].Tags)
	assert.Empty(t, profiles[1].Tags)
}

func TestProfiles_MissingFile(t *testing.T) {
	_, err := NewProfiles("/nonexistent/profiles.json").Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProducts_Load(t *testing.T) {
	path := writeCollection(t, "products.json", `[
		{
			"name": "Widget Studio",
			"slug": "widget-studio",
			"excerpt": "Design widgets visually.",
			"description": "Full widget design suite.",
			"image": "/img/widget.png",
			"category": "developer-tools",
			"license": "MIT",
			"publishedAt": "2025-03-01T00:00:00Z",
			"updatedAt": "2025-03-05T00:00:00Z",
			"tags": ["tooling"]
		}
	]`)

	products, err := NewProducts(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	product := products[0]
	assert.Equal(t, "Widget Studio", product.Name)
	assert.Equal(t, "widget-studio", product.Slug)
	assert.Equal(t, "Design widgets visually.", product.Excerpt)
	assert.Equal(t, "Full widget design suite.", product.Description)
	assert.Equal(t, "/img/widget.png", product.Image)
	assert.Equal(t, "developer-tools", product.Category)
	assert.Equal(t, "MIT", product.License)
	assert.Equal(t, "2025-03-01T00:00:00Z", product.PublishedAt)
	assert.Equal(t, "2025-03-05T00:00:00Z", product.UpdatedAt)
	assert.Equal(t, []string{"tooling"}, product.Tags)
}

func TestProducts_EmptyArray(t *testing.T) {
	path := writeCollection(t, "products.json", `[]`)

	products, err := NewProducts(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProducts_InvalidJSON(t *testing.T) {
	path := writeCollection(t, "products.json", `not json`)

	_, err := NewProducts(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedContent))
}
