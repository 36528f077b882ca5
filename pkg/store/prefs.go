package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// PreferencesFileName is the persisted preference file inside the data
// directory.
const PreferencesFileName = "preferences.json"

// LastCheckedLayout is the display format of the last update check
// timestamp, e.g. "August 24, 2026 at 09:15 PM".
const LastCheckedLayout = "January 02, 2006 at 03:04 PM"

// Preferences are the few values the update lifecycle keeps between
// sessions: the content hash of the last downloaded dataset, when the
// remote was last checked, and whether that check found a newer dataset.
type Preferences struct {
	RemoteSHA       string `json:"remote_sha"`
	LastChecked     string `json:"last_checked"`
	UpdateAvailable bool   `json:"update_available"`
}

// DefaultPreferences returns the state before any check has run.
func DefaultPreferences() Preferences {
	return Preferences{LastChecked: "Never"}
}

// PreferencesStore manages the preference file beside the dataset.
type PreferencesStore struct {
	dir string
}

// NewPreferencesStore creates a store rooted at the given data directory.
func NewPreferencesStore(dir string) *PreferencesStore {
	return &PreferencesStore{dir: dir}
}

// FilePath returns the location of the persisted preferences.
func (p *PreferencesStore) FilePath() string {
	return filepath.Join(p.dir, PreferencesFileName)
}

// Load reads the persisted preferences, degrading to defaults when the file
// is absent or unreadable. Load never fails.
func (p *PreferencesStore) Load() Preferences {
	data, err := os.ReadFile(p.FilePath())
	if err != nil {
		return DefaultPreferences()
	}

	prefs := DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Camera Sensor Database: error reading %s file.", PreferencesFileName)
		return DefaultPreferences()
	}
	return prefs
}

// Save atomically writes the preferences.
func (p *PreferencesStore) Save(prefs Preferences) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := writeFileAtomic(p.dir, p.FilePath(), data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
