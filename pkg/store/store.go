// Package store owns the persisted sensor dataset and the small preference
// file kept beside it. The dataset is replaced wholesale or not at all;
// there are no partial updates.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/models"
)

// DatasetFileName is the persisted dataset file inside the data directory.
const DatasetFileName = "sensors.json"

// LoadStatus describes the outcome of the most recent Load.
type LoadStatus int

const (
	// StatusLoaded means the persisted file parsed as a dataset.
	StatusLoaded LoadStatus = iota
	// StatusNotFound means the persisted file was absent or unreadable.
	StatusNotFound
	// StatusMalformed means the file existed but did not parse as the
	// expected object-of-objects structure.
	StatusMalformed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusNotFound:
		return "not found"
	case StatusMalformed:
		return "malformed"
	}
	return "unknown"
}

// DatasetStore manages the on-disk sensor dataset and its in-memory copy.
type DatasetStore struct {
	dir     string
	dataset models.SensorDataset
	status  LoadStatus
}

// NewDatasetStore creates a store rooted at the given data directory. The
// dataset is empty until the first Load.
func NewDatasetStore(dir string) *DatasetStore {
	return &DatasetStore{
		dir:     dir,
		dataset: models.SensorDataset{},
		status:  StatusNotFound,
	}
}

// FilePath returns the location of the persisted dataset.
func (s *DatasetStore) FilePath() string {
	return filepath.Join(s.dir, DatasetFileName)
}

// Load reads the persisted dataset. A missing file or unparseable content
// degrades to an empty dataset with the matching status; Load never fails.
func (s *DatasetStore) Load() models.SensorDataset {
	data, err := os.ReadFile(s.FilePath())
	if err != nil {
		log.Printf("Camera Sensor Database: %s not found.", DatasetFileName)
		s.dataset = models.SensorDataset{}
		s.status = StatusNotFound
		return s.dataset
	}

	var ds models.SensorDataset
	if err := json.Unmarshal(data, &ds); err != nil || ds == nil {
		log.Printf("Camera Sensor Database: error reading %s file.", DatasetFileName)
		s.dataset = models.SensorDataset{}
		s.status = StatusMalformed
		return s.dataset
	}

	log.Println("Camera Sensor Database: loaded sensor data.")
	s.dataset = ds
	s.status = StatusLoaded
	return s.dataset
}

// Dataset returns the current in-memory dataset.
func (s *DatasetStore) Dataset() models.SensorDataset {
	return s.dataset
}

// Status returns the outcome of the most recent Load.
func (s *DatasetStore) Status() LoadStatus {
	return s.status
}

// Replace atomically writes new dataset bytes to the persisted location and
// refreshes the in-memory copy. On failure the previous file and in-memory
// dataset are left untouched.
func (s *DatasetStore) Replace(data []byte) error {
	if err := writeFileAtomic(s.dir, s.FilePath(), data); err != nil {
		return fmt.Errorf("failed to replace dataset: %w", err)
	}
	s.Load()
	return nil
}

// writeFileAtomic writes through a temp file in the target directory so the
// rename never crosses filesystems and readers never see a partial file.
func writeFileAtomic(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".csd-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
