package updater

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/store"
)

// Updater coordinates update checks and downloads against the dataset and
// preference stores. Nothing runs in the background; every call is driven
// by an explicit user action.
type Updater struct {
	client   *Client
	datasets *store.DatasetStore
	prefs    *store.PreferencesStore
	online   func() bool
	now      func() time.Time
}

// Option is a function that configures an Updater.
type Option func(*Updater)

// New creates an Updater over the given client and stores.
func New(client *Client, datasets *store.DatasetStore, prefs *store.PreferencesStore, opts ...Option) *Updater {
	u := &Updater{
		client:   client,
		datasets: datasets,
		prefs:    prefs,
		online:   func() bool { return true },
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// WithOnlineGate sets the host's online-access switch. When the gate
// reports false every network operation is cancelled up front.
func WithOnlineGate(online func() bool) Option {
	return func(u *Updater) {
		u.online = online
	}
}

// WithClock sets the time source used for the last-checked stamp.
func WithClock(now func() time.Time) Option {
	return func(u *Updater) {
		u.now = now
	}
}

// CheckForUpdate compares the remote content hash against the stored one
// and records the result in the preferences. It reports whether a newer
// dataset is available.
func (u *Updater) CheckForUpdate(ctx context.Context) (bool, error) {
	if !u.online() {
		return false, ErrNetworkUnavailable
	}

	sha, err := u.client.FetchVersion(ctx)
	if err != nil {
		return false, err
	}

	prefs := u.prefs.Load()
	prefs.UpdateAvailable = sha != prefs.RemoteSHA
	prefs.LastChecked = u.now().Format(store.LastCheckedLayout)

	if err := u.prefs.Save(prefs); err != nil {
		return prefs.UpdateAvailable, err
	}

	return prefs.UpdateAvailable, nil
}

// Download fetches the remote dataset, replaces the persisted copy verbatim
// and records the new content hash. On any fetch or write failure the
// previously persisted file and the in-memory dataset stay untouched.
func (u *Updater) Download(ctx context.Context) error {
	if !u.online() {
		return ErrNetworkUnavailable
	}

	log.Printf("Downloading sensor database from %s...", u.client.sensorsURL)

	data, err := u.client.FetchDataset(ctx)
	if err != nil {
		return err
	}

	if err := u.datasets.Replace(data); err != nil {
		return err
	}

	// The file is already replaced at this point; a failed hash fetch only
	// leaves the stored hash stale, so the next check reports an update.
	sha, err := u.client.FetchVersion(ctx)
	if err != nil {
		return fmt.Errorf("dataset downloaded but version fetch failed: %w", err)
	}

	prefs := u.prefs.Load()
	prefs.RemoteSHA = sha
	prefs.UpdateAvailable = false
	prefs.LastChecked = u.now().Format(store.LastCheckedLayout)

	if err := u.prefs.Save(prefs); err != nil {
		return err
	}

	log.Printf("✓ Sensor database saved to %s", u.datasets.FilePath())
	return nil
}
