// Package jsonfile loads content collections from exported JSON files.
// Each file holds one collection, either as a bare array or wrapped in
// an object with an "items" key.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
	"github.com/copperline-studio/activityfeed/internal/logger"
)

// Posts loads blog posts from a JSON export file.
type Posts struct {
	path string
}

// NewPosts creates a post loader over the given file.
func NewPosts(path string) *Posts {
	return &Posts{path: path}
}

// Load reads and decodes the posts file.
func (p *Posts) Load(ctx context.Context) ([]domain.BlogPostItem, error) {
	payload, err := readCollection(ctx, p.path)
	if err != nil {
		return nil, err
	}

	var docs []postDoc
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("posts file %s: %w: %v", filepath.Base(p.path), domain.ErrMalformedContent, err)
	}

	posts := make([]domain.BlogPostItem, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, doc.toItem())
	}
	logger.Debug("Read %d posts from %s", len(posts), p.path)
	return posts, nil
}

// Profiles loads community profiles from a JSON export file.
type Profiles struct {
	path string
}

// NewProfiles creates a profile loader over the given file.
func NewProfiles(path string) *Profiles {
	return &Profiles{path: path}
}

// Load reads and decodes the profiles file.
func (p *Profiles) Load(ctx context.Context) ([]domain.ProfileItem, error) {
	payload, err := readCollection(ctx, p.path)
	if err != nil {
		return nil, err
	}

	var docs []profileDoc
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("profiles file %s: %w: %v", filepath.Base(p.path), domain.ErrMalformedContent, err)
	}

	profiles := make([]domain.ProfileItem, 0, len(docs))
	for _, doc := range docs {
		profiles = append(profiles, doc.toItem())
	}
	logger.Debug("Read %d profiles from %s", len(profiles), p.path)
	return profiles, nil
}

// Products loads product entries from a JSON export file.
type Products struct {
	path string
}

// NewProducts creates a product loader over the given file.
func NewProducts(path string) *Products {
	return &Products{path: path}
}

// Load reads and decodes the products file.
func (p *Products) Load(ctx context.Context) ([]domain.ProductItem, error) {
	payload, err := readCollection(ctx, p.path)
	if err != nil {
		return nil, err
	}

	var docs []productDoc
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("products file %s: %w: %v", filepath.Base(p.path), domain.ErrMalformedContent, err)
	}

	products := make([]domain.ProductItem, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.toItem())
	}
	logger.Debug("Read %d products from %s", len(products), p.path)
	return products, nil
}

// readCollection reads the file and unwraps an optional items
// envelope, returning the raw JSON array.
func readCollection(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("collection file not set: %w", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("collection file %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read collection file: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return data, nil
	}

	var envelope struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("collection file %s: %w: %v", filepath.Base(path), domain.ErrMalformedContent, err)
	}
	if envelope.Items == nil {
		return nil, fmt.Errorf("collection file %s has no items array: %w", filepath.Base(path), domain.ErrMalformedContent)
	}
	return envelope.Items, nil
}

// postDoc is the wire shape of an exported blog post.
type postDoc struct {
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Excerpt       string      `json:"excerpt"`
	Description   string      `json:"description"`
	Date          string      `json:"date"`
	PublishedAt   string      `json:"publishedAt"`
	FeaturedImage string      `json:"featuredImage"`
	CoverImage    string      `json:"coverImage"`
	HeroImage     string      `json:"heroImage"`
	Category      string      `json:"category"`
	Categories    []string    `json:"categories"`
	Tags          []string    `json:"tags"`
	Author        authorField `json:"author"`
	Published     *bool       `json:"published"`
	Draft         bool        `json:"draft"`
}

func (d postDoc) toItem() domain.BlogPostItem {
	item := domain.BlogPostItem{
		Title:         d.Title,
		Slug:          d.Slug,
		Excerpt:       d.Excerpt,
		Description:   d.Description,
		Date:          d.Date,
		PublishedAt:   d.PublishedAt,
		FeaturedImage: d.FeaturedImage,
		CoverImage:    d.CoverImage,
		HeroImage:     d.HeroImage,
		Category:      d.Category,
		Categories:    d.Categories,
		Tags:          d.Tags,
		Published:     d.Published,
		Draft:         d.Draft,
	}
	if d.Author.Name != "" {
		item.Author = &domain.PostAuthor{Name: d.Author.Name}
	}
	return item
}

// authorField accepts the author as null, a bare string, or an object
// carrying a name key.
type authorField struct {
	Name string
}

func (a *authorField) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.Name)
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.New("author must be a string or an object")
	}
	a.Name = obj.Name
	return nil
}

// profileDoc is the wire shape of an exported community profile.
// Tags decode to nil only when absent; an explicit empty array stays
// non-nil, which downstream tag resolution depends on.
type profileDoc struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Slug        string   `json:"slug"`
	Bio         string   `json:"bio"`
	Role        string   `json:"role"`
	Avatar      string   `json:"avatar"`
	ImageURL    string   `json:"imageUrl"`
	PublishedAt string   `json:"publishedAt"`
	UpdatedAt   string   `json:"updatedAt"`
	JoinedDate  string   `json:"joinedDate"`
	Tags        []string `json:"tags"`
	Interests   []string `json:"interests"`
}

func (d profileDoc) toItem() domain.ProfileItem {
	return domain.ProfileItem{
		Name:        d.Name,
		DisplayName: d.DisplayName,
		Slug:        d.Slug,
		Bio:         d.Bio,
		Role:        d.Role,
		Avatar:      d.Avatar,
		ImageURL:    d.ImageURL,
		PublishedAt: d.PublishedAt,
		UpdatedAt:   d.UpdatedAt,
		JoinedDate:  d.JoinedDate,
		Tags:        d.Tags,
		Interests:   d.Interests,
	}
}

// productDoc is the wire shape of an exported product entry.
type productDoc struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	License     string   `json:"license"`
	PublishedAt string   `json:"publishedAt"`
	UpdatedAt   string   `json:"updatedAt"`
	Tags        []string `json:"tags"`
}

func (d productDoc) toItem() domain.ProductItem {
	return domain.ProductItem{
		Name:        d.Name,
		Slug:        d.Slug,
		Excerpt:     d.Excerpt,
		Description: d.Description,
		Image:       d.Image,
		Category:    d.Category,
		License:     d.License,
		PublishedAt: d.PublishedAt,
		UpdatedAt:   d.UpdatedAt,
		Tags:        d.Tags,
	}
}
