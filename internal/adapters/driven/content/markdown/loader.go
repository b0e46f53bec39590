// Package markdown loads blog posts from a directory of markdown files
// with YAML front matter. Only the front matter feeds the activity
// feed; post bodies stay on disk.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
	"github.com/copperline-studio/activityfeed/internal/logger"
)

// frontMatterRe captures the YAML block between the leading --- fences.
var frontMatterRe = regexp.MustCompile(`(?s)\A---\r?\n(.*?)(?:\r?\n)?---[ \t]*(?:\r?\n|\z)`)

// Loader reads every markdown file of one directory as a blog post.
type Loader struct {
	dir string
}

// New creates a loader over the given posts directory.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load reads all *.md and *.markdown files in the directory. A file
// that cannot be read or whose front matter is invalid fails the whole
// load; the feed core then skips this source entirely.
func (l *Loader) Load(ctx context.Context) ([]domain.BlogPostItem, error) {
	if l.dir == "" {
		return nil, fmt.Errorf("posts directory not set: %w", domain.ErrInvalidInput)
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("posts directory %s: %w", l.dir, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read posts directory: %w", err)
	}

	posts := make([]domain.BlogPostItem, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}

		post, err := l.loadFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	logger.Debug("Read %d markdown posts from %s", len(posts), l.dir)
	return posts, nil
}

// loadFile parses one post file into a raw blog post item.
func (l *Loader) loadFile(path string) (domain.BlogPostItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.BlogPostItem{}, fmt.Errorf("read post file: %w", err)
	}

	fm, err := parseFrontMatter(data)
	if err != nil {
		return domain.BlogPostItem{}, fmt.Errorf("post file %s: %w", filepath.Base(path), err)
	}

	return fm.toItem(fileStem(path)), nil
}

// postFrontMatter is the wire shape of a post's YAML front matter.
// Field names follow the content convention of the source sites.
type postFrontMatter struct {
	Title         string     `yaml:"title"`
	Slug          string     `yaml:"slug"`
	Excerpt       string     `yaml:"excerpt"`
	Description   string     `yaml:"description"`
	Date          string     `yaml:"date"`
	PublishedAt   string     `yaml:"publishedAt"`
	FeaturedImage string     `yaml:"featuredImage"`
	CoverImage    string     `yaml:"coverImage"`
	HeroImage     string     `yaml:"heroImage"`
	Category      string     `yaml:"category"`
	Categories    []string   `yaml:"categories"`
	Tags          []string   `yaml:"tags"`
	Author        authorNode `yaml:"author"`
	Published     *bool      `yaml:"published"`
	Draft         bool       `yaml:"draft"`
}

// authorNode accepts the author as either a bare scalar name or a
// mapping carrying a name key.
type authorNode struct {
	Name string
}

func (a *authorNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&a.Name)
	}

	var obj struct {
		Name string `yaml:"name"`
	}
	if err := value.Decode(&obj); err != nil {
		return err
	}
	a.Name = obj.Name
	return nil
}

// toItem maps the front matter onto the domain shape. The filename
// stem stands in for a missing slug.
func (fm postFrontMatter) toItem(stem string) domain.BlogPostItem {
	item := domain.BlogPostItem{
		Title:         fm.Title,
		Slug:          fm.Slug,
		Excerpt:       fm.Excerpt,
		Description:   fm.Description,
		Date:          fm.Date,
		PublishedAt:   fm.PublishedAt,
		FeaturedImage: fm.FeaturedImage,
		CoverImage:    fm.CoverImage,
		HeroImage:     fm.HeroImage,
		Category:      fm.Category,
		Categories:    fm.Categories,
		Tags:          fm.Tags,
		Published:     fm.Published,
		Draft:         fm.Draft,
	}
	if item.Slug == "" {
		item.Slug = stem
	}
	if fm.Author.Name != "" {
		item.Author = &domain.PostAuthor{Name: fm.Author.Name}
	}
	return item
}

// parseFrontMatter extracts and decodes the YAML between the fences.
// A file without front matter yields a zero value; an opened fence
// that never closes, or YAML that does not parse, is malformed.
func parseFrontMatter(data []byte) (postFrontMatter, error) {
	var fm postFrontMatter

	m := frontMatterRe.FindSubmatch(data)
	if m == nil {
		if bytes.HasPrefix(data, []byte("---")) {
			return fm, fmt.Errorf("unterminated front matter: %w", domain.ErrMalformedContent)
		}
		return fm, nil
	}

	if err := yaml.Unmarshal(m[1], &fm); err != nil {
		return fm, fmt.Errorf("%w: %v", domain.ErrMalformedContent, err)
	}
	return fm, nil
}

// isMarkdown reports whether the filename has a markdown extension.
func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// fileStem returns the filename without directory or extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
