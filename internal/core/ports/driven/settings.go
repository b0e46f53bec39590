package driven

// Settings keys understood by the content source wiring. Values are
// filesystem paths; an empty or absent value leaves the source off.
const (
	SettingPostsDir     = "content.posts_dir"
	SettingProfilesFile = "content.profiles_file"
	SettingProductsFile = "content.products_file"
	SettingDatabase     = "content.database"
)

// SettingsStore provides access to persistent command-line settings.
// Implementations handle persistence (e.g., TOML files).
type SettingsStore interface {
	// Get retrieves a setting by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string setting.
	// Returns empty string if the key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a setting.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Delete removes a setting and persists the change.
	// Deleting an absent key is not an error.
	Delete(key string) error

	// All returns a copy of every stored setting by dotted key.
	All() map[string]any

	// Path returns the settings file path.
	Path() string
}
