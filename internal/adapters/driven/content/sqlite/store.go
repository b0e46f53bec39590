// Package sqlite loads content collections from a site database. The
// store only reads; publishing pipelines own the schema and writes.
//
// Expected tables are posts, profiles and products. List-valued
// columns (tags, categories, interests) hold JSON array text.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
	"github.com/copperline-studio/activityfeed/internal/logger"
)

// Store reads content collections from one SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens the database read-only. The file must already exist;
// this adapter never creates or migrates a database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path not set: %w", domain.ErrInvalidInput)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("database %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Debug("Opened content database %s", path)
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

const postsQuery = `
	SELECT title, slug, excerpt, description, date, published_at,
	       featured_image, cover_image, hero_image, category,
	       categories, tags, author_name, published, draft
	FROM posts`

// Posts reads every blog post row. Its signature matches the blog
// loader contract, so a method value plugs straight into the feed.
func (s *Store) Posts(ctx context.Context) ([]domain.BlogPostItem, error) {
	rows, err := s.db.QueryContext(ctx, postsQuery)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPostItem
	for rows.Next() {
		var (
			title         sql.NullString
			slug          sql.NullString
			excerpt       sql.NullString
			description   sql.NullString
			date          sql.NullString
			publishedAt   sql.NullString
			featuredImage sql.NullString
			coverImage    sql.NullString
			heroImage     sql.NullString
			category      sql.NullString
			categories    sql.NullString
			tags          sql.NullString
			authorName    sql.NullString
			published     sql.NullBool
			draft         sql.NullBool
		)
		if err := rows.Scan(&title, &slug, &excerpt, &description,
			&date, &publishedAt, &featuredImage, &coverImage, &heroImage,
			&category, &categories, &tags, &authorName, &published, &draft); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}

		categoryList, err := jsonList(categories)
		if err != nil {
			return nil, fmt.Errorf("post %s categories: %w", slug.String, err)
		}
		tagList, err := jsonList(tags)
		if err != nil {
			return nil, fmt.Errorf("post %s tags: %w", slug.String, err)
		}

		post := domain.BlogPostItem{
			Title:         title.String,
			Slug:          slug.String,
			Excerpt:       excerpt.String,
			Description:   description.String,
			Date:          date.String,
			PublishedAt:   publishedAt.String,
			FeaturedImage: featuredImage.String,
			CoverImage:    coverImage.String,
			HeroImage:     heroImage.String,
			Category:      category.String,
			Categories:    categoryList,
			Tags:          tagList,
			Draft:         draft.Bool,
		}
		if authorName.Valid && authorName.String != "" {
			post.Author = &domain.PostAuthor{Name: authorName.String}
		}
		if published.Valid {
			value := published.Bool
			post.Published = &value
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	logger.Debug("Read %d posts from database", len(posts))
	return posts, nil
}

const profilesQuery = `
	SELECT name, display_name, slug, bio, role, avatar, image_url,
	       published_at, updated_at, joined_date, tags, interests
	FROM profiles`

// Profiles reads every community profile row.
func (s *Store) Profiles(ctx context.Context) ([]domain.ProfileItem, error) {
	rows, err := s.db.QueryContext(ctx, profilesQuery)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.ProfileItem
	for rows.Next() {
		var (
			name        sql.NullString
			displayName sql.NullString
			slug        sql.NullString
			bio         sql.NullString
			role        sql.NullString
			avatar      sql.NullString
			imageURL    sql.NullString
			publishedAt sql.NullString
			updatedAt   sql.NullString
			joinedDate  sql.NullString
			tags        sql.NullString
			interests   sql.NullString
		)
		if err := rows.Scan(&name, &displayName, &slug, &bio, &role,
			&avatar, &imageURL, &publishedAt, &updatedAt, &joinedDate,
			&tags, &interests); err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}

		tagList, err := jsonList(tags)
		if err != nil {
			return nil, fmt.Errorf("profile %s tags: %w", slug.String, err)
		}
		interestList, err := jsonList(interests)
		if err != nil {
			return nil, fmt.Errorf("profile %s interests: %w", slug.String, err)
		}

		profiles = append(profiles, domain.ProfileItem{
			Name:        name.String,
			DisplayName: displayName.String,
			Slug:        slug.String,
			Bio:         bio.String,
			Role:        role.String,
			Avatar:      avatar.String,
			ImageURL:    imageURL.String,
			PublishedAt: publishedAt.String,
			UpdatedAt:   updatedAt.String,
			JoinedDate:  joinedDate.String,
			Tags:        tagList,
			Interests:   interestList,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}

	logger.Debug("Read %d profiles from database", len(profiles))
	return profiles, nil
}

const productsQuery = `
	SELECT name, slug, excerpt, description, image, category, license,
	       published_at, updated_at, tags
	FROM products`

// Products reads every product row.
func (s *Store) Products(ctx context.Context) ([]domain.ProductItem, error) {
	rows, err := s.db.QueryContext(ctx, productsQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.ProductItem
	for rows.Next() {
		var (
			name        sql.NullString
			slug        sql.NullString
			excerpt     sql.NullString
			description sql.NullString
			image       sql.NullString
			category    sql.NullString
			license     sql.NullString
			publishedAt sql.NullString
			updatedAt   sql.NullString
			tags        sql.NullString
		)
		if err := rows.Scan(&name, &slug, &excerpt, &description,
			&image, &category, &license, &publishedAt, &updatedAt, &tags); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}

		tagList, err := jsonList(tags)
		if err != nil {
			return nil, fmt.Errorf("product %s tags: %w", slug.String, err)
		}

		products = append(products, domain.ProductItem{
			Name:        name.String,
			Slug:        slug.String,
			Excerpt:     excerpt.String,
			Description: description.String,
			Image:       image.String,
			Category:    category.String,
			License:     license.String,
			PublishedAt: publishedAt.String,
			UpdatedAt:   updatedAt.String,
			Tags:        tagList,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	logger.Debug("Read %d products from database", len(products))
	return products, nil
}

// jsonList decodes a JSON array column. NULL and blank stay nil; an
// explicit [] decodes to an empty non-nil slice, which downstream tag
// resolution distinguishes from absence.
func jsonList(raw sql.NullString) ([]string, error) {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw.String), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedContent, err)
	}
	return list, nil
}
