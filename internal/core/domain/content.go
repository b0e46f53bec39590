package domain

// PostAuthor is the structured author attached to a blog post.
// Source formats may express the author as either a bare name string
// or an object with a name field; loaders collapse both into this.
type PostAuthor struct {
	// Name is the author's display name.
	Name string
}

// BlogPostItem is a raw blog post as supplied by a content loader,
// before normalisation. Every field is optional; dates are kept as the
// source's original timestamp strings and parsed during normalisation.
type BlogPostItem struct {
	// Title is the post headline. Falls back to Slug when empty.
	Title string

	// Slug is the URL-friendly identifier of the post.
	Slug string

	// Excerpt is a short hand-written summary.
	Excerpt string

	// Description is a longer summary used when Excerpt is absent.
	Description string

	// Date is the primary publication timestamp string.
	Date string

	// PublishedAt is an alternate publication timestamp string.
	PublishedAt string

	// FeaturedImage, CoverImage and HeroImage are illustration
	// candidates in descending order of preference.
	FeaturedImage string
	CoverImage    string
	HeroImage     string

	// Category is the post's single category.
	Category string

	// Categories is a multi-category variant; the first entry wins
	// over Category when present.
	Categories []string

	// Tags holds the post's labels.
	Tags []string

	// Author is the post's author. Nil means no author was given.
	Author *PostAuthor

	// Published marks explicit publication state. Nil means unset;
	// only an explicit false hides the post.
	Published *bool

	// Draft marks the post as a work in progress. Drafts are hidden.
	Draft bool
}

// ProfileItem is a raw community profile as supplied by a content
// loader, before normalisation.
type ProfileItem struct {
	// Name is the member's primary display name.
	Name string

	// DisplayName is an alternate display name used when Name is empty.
	DisplayName string

	// Slug is the URL-friendly identifier of the profile.
	Slug string

	// Bio is a short self-description.
	Bio string

	// Role is the member's role within the community.
	Role string

	// Avatar is the preferred profile image.
	Avatar string

	// ImageURL is an alternate profile image used when Avatar is empty.
	ImageURL string

	// PublishedAt, UpdatedAt and JoinedDate are timestamp strings in
	// descending order of preference.
	PublishedAt string
	UpdatedAt   string
	JoinedDate  string

	// Tags holds the profile's labels. The nil/empty distinction is
	// meaningful: a present-but-empty Tags shadows Interests.
	Tags []string

	// Interests is the fallback label set when Tags is absent.
	Interests []string
}

// ProductItem is a raw product entry as supplied by a content loader,
// before normalisation.
type ProductItem struct {
	// Name is the product name, used directly as the item title.
	Name string

	// Slug is the URL-friendly identifier of the product.
	Slug string

	// Excerpt is a short hand-written summary.
	Excerpt string

	// Description is a longer summary used when Excerpt is absent.
	Description string

	// Image is the product illustration.
	Image string

	// Category is the product's own category. It survives
	// normalisation as ProductCategory.
	Category string

	// License is the product's licence identifier.
	License string

	// PublishedAt and UpdatedAt are timestamp strings in descending
	// order of preference.
	PublishedAt string
	UpdatedAt   string

	// Tags holds the product's labels.
	Tags []string
}
