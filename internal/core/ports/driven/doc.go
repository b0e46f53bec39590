// Package driven defines the contracts that core calls OUT to content sources.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these types, and content adapters (or callers
// supplying their own functions) satisfy them.
//
// # Loader Contracts
//
// Each loader is a plain function returning one raw collection:
//
//   - BlogLoader: Supplies raw blog posts
//   - ProfileLoader: Supplies raw community profiles
//   - ProductLoader: Supplies raw product entries
//
// All loaders are optional. Config bundles the configured subset; an
// unset or failing loader contributes nothing to the feed and never
// fails a query.
//
// Shipped implementations live under internal/adapters/driven/content
// (markdown front matter, JSON files, SQLite).
//
// # Settings
//
// SettingsStore persists command-line settings (content source paths)
// between runs. The TOML implementation lives under
// internal/adapters/driven/config/file.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
