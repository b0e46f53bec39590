// Package domain defines the core business entities for the activity feed.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ActivityItem: The canonical feed item after normalisation
//   - BlogPostItem: A raw blog post as supplied by a content loader
//   - ProfileItem: A raw community profile as supplied by a content loader
//   - ProductItem: A raw product entry as supplied by a content loader
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
