package driven

import "github.com/mailseek-labs/mailseek-cli/internal/core/domain"

// SettingsStore persists the search configuration.
type SettingsStore interface {
	// Load returns the stored settings, with defaults filled in for any
	// missing values.
	Load() (domain.Settings, error)

	// Save persists the settings.
	Save(domain.Settings) error

	// Watch invokes fn with fresh settings whenever the backing store
	// changes. Watching is best-effort; implementations without change
	// notification may ignore it.
	Watch(fn func(domain.Settings)) error

	// Close releases any watch resources.
	Close() error
}
