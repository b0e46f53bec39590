package normalisers

import (
	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

// Product converts a raw product entry into a feed item. Products are
// always included. The product's own category moves to ProductCategory
// so the fixed "product" collection label can occupy Category.
func Product(product domain.ProductItem) domain.ActivityItem {
	return domain.ActivityItem{
		Type:            domain.TypeProduct,
		Title:           product.Name,
		Slug:            product.Slug,
		Excerpt:         firstNonEmpty(product.Excerpt, product.Description),
		Date:            effectiveDate(product.PublishedAt, product.UpdatedAt),
		Image:           product.Image,
		Category:        "product",
		Tags:            copyTags(product.Tags),
		ProductCategory: product.Category,
		License:         product.License,
	}
}
