package activityfeed

import (
	"github.com/copperline-studio/activityfeed/internal/adapters/driven/content/jsonfile"
	"github.com/copperline-studio/activityfeed/internal/adapters/driven/content/markdown"
	"github.com/copperline-studio/activityfeed/internal/adapters/driven/content/sqlite"
)

// MarkdownPostLoader reads blog posts from the markdown files in dir,
// taking fields from YAML front matter. The directory is rescanned on
// every load.
func MarkdownPostLoader(dir string) BlogLoader {
	return markdown.New(dir).Load
}

// JSONPostLoader reads blog posts from a JSON collection file. The
// file may hold a bare array or an {"items": [...]} envelope.
func JSONPostLoader(path string) BlogLoader {
	return jsonfile.NewPosts(path).Load
}

// JSONProfileLoader reads community profiles from a JSON collection file.
func JSONProfileLoader(path string) ProfileLoader {
	return jsonfile.NewProfiles(path).Load
}

// JSONProductLoader reads product entries from a JSON collection file.
func JSONProductLoader(path string) ProductLoader {
	return jsonfile.NewProducts(path).Load
}

// SQLiteLoaders opens a read-only content database and returns loaders
// for all three collections plus a close function for the connection.
// The same connection backs all three loaders.
func SQLiteLoaders(path string) (Config, func() error, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return Config{}, nil, err
	}

	cfg := Config{
		LoadBlogPosts: store.Posts,
		LoadProfiles:  store.Profiles,
		LoadProducts:  store.Products,
	}
	return cfg, store.Close, nil
}
