package models

import "encoding/json"

// SensorDataset maps manufacturer name to model name to the model's record.
// Iteration order is undefined; consumers that display choices sort the keys.
type SensorDataset map[string]map[string]ModelRecord

// ModelRecord holds the per-model format table. The on-disk key is
// "sensor dimensions", with a space, matching the upstream database.
type ModelRecord struct {
	SensorDimensions map[string]FormatRecord `json:"sensor dimensions"`
}

// FormatRecord is the leaf record for a single sensor format. Either field
// may be absent; an absent field means "not applicable", never zero.
type FormatRecord struct {
	MM         *SensorSizeRecord `json:"mm,omitempty"`
	Resolution *ResolutionRecord `json:"resolution,omitempty"`
}

// SensorSizeRecord carries the physical sensor dimensions in millimeters.
type SensorSizeRecord struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// ResolutionRecord carries the pixel counts for a format. Pixel counts must
// be JSON integers; fractional or non-numeric values are kept as unset.
type ResolutionRecord struct {
	Width  PixelCount `json:"width"`
	Height PixelCount `json:"height"`
}

// SensorSize is a resolved physical dimension pair in millimeters.
type SensorSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Resolution is a resolved pixel count pair.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SensorSize returns the physical dimensions when both fields are present.
func (r FormatRecord) SensorSize() (SensorSize, bool) {
	if r.MM == nil || r.MM.Width == nil || r.MM.Height == nil {
		return SensorSize{}, false
	}
	return SensorSize{Width: *r.MM.Width, Height: *r.MM.Height}, true
}

// PixelResolution returns the pixel counts when both fields are present and
// were integers in the source document. A fractional value such as 8192.5 is
// treated as absent, never truncated.
func (r FormatRecord) PixelResolution() (Resolution, bool) {
	if r.Resolution == nil {
		return Resolution{}, false
	}
	w, ok := r.Resolution.Width.Int()
	if !ok {
		return Resolution{}, false
	}
	h, ok := r.Resolution.Height.Int()
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Width: w, Height: h}, true
}

// PixelCount decodes a JSON value that is only accepted as an integer
// literal. Anything else (fractional number, string, null) leaves the count
// unset rather than failing the surrounding document.
type PixelCount struct {
	value int
	valid bool
}

// PixelCountOf builds a set PixelCount, mainly for constructing datasets in
// code.
func PixelCountOf(v int) PixelCount {
	return PixelCount{value: v, valid: true}
}

// Int returns the count and whether it was set.
func (p PixelCount) Int() (int, bool) {
	return p.value, p.valid
}

func (p *PixelCount) UnmarshalJSON(data []byte) error {
	*p = PixelCount{}
	// json.Number would accept a quoted number, but a string is not an
	// integer.
	if len(data) == 0 || data[0] == '"' {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	v, err := n.Int64()
	if err != nil {
		return nil
	}
	*p = PixelCount{value: int(v), valid: true}
	return nil
}

func (p PixelCount) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}
