// Package selector derives the cascading manufacturer/model/format choice
// lists from a sensor dataset and resolves a full selection to its leaf
// record. All functions are pure queries; nothing here mutates the dataset.
package selector

import (
	"sort"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/models"
)

// Choice is a single entry in a choice list.
type Choice struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Sentinel choices returned when a level has no valid options. Their key is
// models.SentinelKey and never resolves against the dataset.
var (
	noDataChoice = Choice{
		Key:         models.SentinelKey,
		Label:       "No Data Found",
		Description: "Please download the sensor database.",
	}
	notApplicableChoice = Choice{
		Key:   models.SentinelKey,
		Label: "N/A",
	}
)

// IsSentinel reports whether a choice list is the single-sentinel list.
func IsSentinel(choices []Choice) bool {
	return len(choices) == 1 && choices[0].Key == models.SentinelKey
}

// ManufacturerChoices returns all manufacturer keys, lexicographically
// sorted. An empty dataset yields the single "No Data Found" sentinel.
func ManufacturerChoices(ds models.SensorDataset) []Choice {
	if len(ds) == 0 {
		return []Choice{noDataChoice}
	}
	keys := make([]string, 0, len(ds))
	for m := range ds {
		keys = append(keys, m)
	}
	return toChoices(keys)
}

// ModelChoices returns the model keys under a manufacturer. An unset or
// unknown manufacturer yields the single "N/A" sentinel.
func ModelChoices(ds models.SensorDataset, manufacturer string) []Choice {
	if !isRealKey(manufacturer) {
		return []Choice{notApplicableChoice}
	}
	byModel, ok := ds[manufacturer]
	if !ok || len(byModel) == 0 {
		return []Choice{notApplicableChoice}
	}
	keys := make([]string, 0, len(byModel))
	for m := range byModel {
		keys = append(keys, m)
	}
	return toChoices(keys)
}

// FormatChoices returns the format keys under a manufacturer and model,
// one cascade level deeper via the model's sensor-dimension table.
func FormatChoices(ds models.SensorDataset, manufacturer, model string) []Choice {
	if !isRealKey(manufacturer) || !isRealKey(model) {
		return []Choice{notApplicableChoice}
	}
	rec, ok := ds[manufacturer][model]
	if !ok || len(rec.SensorDimensions) == 0 {
		return []Choice{notApplicableChoice}
	}
	keys := make([]string, 0, len(rec.SensorDimensions))
	for f := range rec.SensorDimensions {
		keys = append(keys, f)
	}
	return toChoices(keys)
}

// LookupFormat resolves a full selection to its leaf record. Any miss at any
// level, including sentinel or empty keys, reports false rather than an
// error; stale selections after a dataset reload land here.
func LookupFormat(ds models.SensorDataset, manufacturer, model, format string) (models.FormatRecord, bool) {
	if !isRealKey(manufacturer) || !isRealKey(model) || !isRealKey(format) {
		return models.FormatRecord{}, false
	}
	byModel, ok := ds[manufacturer]
	if !ok {
		return models.FormatRecord{}, false
	}
	rec, ok := byModel[model]
	if !ok {
		return models.FormatRecord{}, false
	}
	leaf, ok := rec.SensorDimensions[format]
	if !ok {
		return models.FormatRecord{}, false
	}
	return leaf, true
}

// ResolveSensorDimensions returns the selected format's physical dimensions
// in millimeters when both fields are present.
func ResolveSensorDimensions(ds models.SensorDataset, manufacturer, model, format string) (models.SensorSize, bool) {
	rec, ok := LookupFormat(ds, manufacturer, model, format)
	if !ok {
		return models.SensorSize{}, false
	}
	return rec.SensorSize()
}

// ResolveResolution returns the selected format's pixel counts when both
// fields are present and were integers in the source document.
func ResolveResolution(ds models.SensorDataset, manufacturer, model, format string) (models.Resolution, bool) {
	rec, ok := LookupFormat(ds, manufacturer, model, format)
	if !ok {
		return models.Resolution{}, false
	}
	return rec.PixelResolution()
}

func isRealKey(key string) bool {
	return key != "" && key != models.SentinelKey
}

func toChoices(keys []string) []Choice {
	sort.Strings(keys)
	choices := make([]Choice, 0, len(keys))
	for _, k := range keys {
		choices = append(choices, Choice{Key: k, Label: k})
	}
	return choices
}
