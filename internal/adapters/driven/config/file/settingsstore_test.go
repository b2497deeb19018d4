package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

func TestSettingsStore_LoadReturnsDefaultsWhenFileAbsent(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.Executable = "notmuch"
	want.MinQueryLength = 2
	want.ThrottleInterval = 250 * time.Millisecond
	want.Fields = domain.NewFieldSpec("i", "s", "f")
	want.ExitCodes[42] = "index locked"

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, want.Executable, got.Executable)
	assert.Equal(t, want.FixedFlags, got.FixedFlags)
	assert.Equal(t, want.Fields, got.Fields)
	assert.Equal(t, want.MinQueryLength, got.MinQueryLength)
	assert.Equal(t, want.ThrottleInterval, got.ThrottleInterval)
	assert.Equal(t, "index locked", got.ExitCodes[42])
}

func TestSettingsStore_LoadFillsDefaultsForPartialFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	partial := []byte("executable = \"notmuch\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), partial, 0600))

	got, err := store.Load()
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.Equal(t, "notmuch", got.Executable)
	assert.Equal(t, defaults.FixedFlags, got.FixedFlags)
	assert.Equal(t, defaults.Fields, got.Fields)
	assert.Equal(t, defaults.MinQueryLength, got.MinQueryLength)
	assert.Equal(t, defaults.ThrottleInterval, got.ThrottleInterval)
}

func TestSettingsStore_WatchDeliversReloadedSettings(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	var mu sync.Mutex
	var latest *domain.Settings
	require.NoError(t, store.Watch(func(s domain.Settings) {
		mu.Lock()
		latest = &s
		mu.Unlock()
	}))
	defer store.Close()

	updated := domain.DefaultSettings()
	updated.Executable = "mu-next"
	require.NoError(t, store.Save(updated))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return latest != nil && latest.Executable == "mu-next"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSettingsStore_WatchTwiceFails(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Watch(func(domain.Settings) {}))
	defer store.Close()

	assert.Error(t, store.Watch(func(domain.Settings) {}))
}

func TestSettingsStore_CloseWithoutWatchIsNoOp(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
