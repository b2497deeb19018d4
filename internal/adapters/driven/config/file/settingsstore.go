// Package file provides a TOML-backed settings store with live reload.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driven"
	"github.com/mailseek-labs/mailseek-cli/internal/logger"
)

// configFileName is the settings file within the config directory.
const configFileName = "config.toml"

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// settingsFile is the on-disk TOML shape. Absent values fall back to the
// defaults, so a partial file is valid.
type settingsFile struct {
	Executable     string            `toml:"executable,omitempty"`
	FixedFlags     []string          `toml:"fixed_flags,omitempty"`
	Fields         []string          `toml:"fields,omitempty"`
	MinQueryLength int               `toml:"min_query_length,omitempty"`
	ThrottleMillis int               `toml:"throttle_interval_ms,omitempty"`
	ExitCodes      map[string]string `toml:"exit_codes,omitempty"`
}

// SettingsStore persists domain.Settings as TOML in the mailseek config
// directory and optionally watches the file for external edits.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// NewSettingsStore creates a store rooted at configDir.
// If configDir is empty, defaults to ~/.mailseek.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".mailseek")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, configFileName),
	}, nil
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

// Load returns the stored settings with defaults filled in for any missing
// values. A missing file yields the defaults.
func (s *SettingsStore) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading config: %w", err)
	}

	var f settingsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return settings, fmt.Errorf("parsing config: %w", err)
	}

	if f.Executable != "" {
		settings.Executable = f.Executable
	}
	if len(f.FixedFlags) > 0 {
		settings.FixedFlags = f.FixedFlags
	}
	if len(f.Fields) > 0 {
		settings.Fields = domain.NewFieldSpec(f.Fields...)
	}
	if f.MinQueryLength > 0 {
		settings.MinQueryLength = f.MinQueryLength
	}
	if f.ThrottleMillis > 0 {
		settings.ThrottleInterval = time.Duration(f.ThrottleMillis) * time.Millisecond
	}
	for codeStr, msg := range f.ExitCodes {
		code, err := strconv.Atoi(codeStr)
		if err != nil {
			logger.Warn("ignoring exit code key %q: %v", codeStr, err)
			continue
		}
		settings.ExitCodes[code] = msg
	}
	return settings, nil
}

// Save persists the settings.
func (s *SettingsStore) Save(settings domain.Settings) error {
	exitCodes := make(map[string]string, len(settings.ExitCodes))
	for code, msg := range settings.ExitCodes {
		exitCodes[strconv.Itoa(code)] = msg
	}
	f := settingsFile{
		Executable:     settings.Executable,
		FixedFlags:     settings.FixedFlags,
		Fields:         settings.Fields.Keys(),
		MinQueryLength: settings.MinQueryLength,
		ThrottleMillis: int(settings.ThrottleInterval / time.Millisecond),
		ExitCodes:      exitCodes,
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Watch invokes fn with freshly-loaded settings whenever the config file is
// written. The config directory is watched rather than the file so that
// editors replacing the file via rename keep the watch alive.
func (s *SettingsStore) Watch(fn func(domain.Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return fmt.Errorf("config watch already active")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching config directory: %w", err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.pumpEvents(watcher, s.done, fn)
	return nil
}

// Close stops watching.
func (s *SettingsStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

func (s *SettingsStore) pumpEvents(watcher *fsnotify.Watcher, done <-chan struct{}, fn func(domain.Settings)) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Name != s.filePath || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			settings, err := s.Load()
			if err != nil {
				logger.Warn("reloading config: %v", err)
				continue
			}
			logger.Info("config reloaded from %s", s.filePath)
			fn(settings)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}
