package models

import (
	"encoding/json"
	"testing"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestSensorDataset_Unmarshal(t *testing.T) {
	data := []byte(`{
		"Acme": {
			"X1": {
				"sensor dimensions": {
					"Full Frame": {
						"mm": {"width": 36.0, "height": 24.0},
						"resolution": {"width": 8192, "height": 5464}
					}
				}
			}
		}
	}`)

	var ds SensorDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		t.Fatalf("Expected dataset to parse, got error: %v", err)
	}

	rec, ok := ds["Acme"]["X1"].SensorDimensions["Full Frame"]
	if !ok {
		t.Fatal("Expected to find Full Frame format record")
	}

	size, ok := rec.SensorSize()
	if !ok {
		t.Fatal("Expected sensor size to resolve")
	}
	if size.Width != 36.0 || size.Height != 24.0 {
		t.Errorf("Expected 36x24, got %gx%g", size.Width, size.Height)
	}

	res, ok := rec.PixelResolution()
	if !ok {
		t.Fatal("Expected resolution to resolve")
	}
	if res.Width != 8192 || res.Height != 5464 {
		t.Errorf("Expected 8192x5464, got %dx%d", res.Width, res.Height)
	}
}

func TestSensorDataset_UnknownFieldsIgnored(t *testing.T) {
	data := []byte(`{
		"Acme": {
			"X1": {
				"sensor dimensions": {
					"Full Frame": {
						"mm": {"width": 36.0, "height": 24.0, "depth": 1.0},
						"notes": "pre-production",
						"crop factor": 1.0
					}
				},
				"released": 2024
			}
		}
	}`)

	var ds SensorDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		t.Fatalf("Expected unknown fields to be ignored, got error: %v", err)
	}

	rec := ds["Acme"]["X1"].SensorDimensions["Full Frame"]
	if _, ok := rec.SensorSize(); !ok {
		t.Error("Expected sensor size to resolve despite extra fields")
	}
}

func TestFormatRecord_SensorSize_MissingFields(t *testing.T) {
	testCases := []struct {
		name string
		rec  FormatRecord
	}{
		{
			name: "No mm object",
			rec:  FormatRecord{},
		},
		{
			name: "Missing width",
			rec:  FormatRecord{MM: &SensorSizeRecord{Height: floatPtr(24.0)}},
		},
		{
			name: "Missing height",
			rec:  FormatRecord{MM: &SensorSizeRecord{Width: floatPtr(36.0)}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := tc.rec.SensorSize(); ok {
				t.Error("Expected sensor size to be not applicable")
			}
		})
	}
}

func TestFormatRecord_SensorSize_ZeroIsPresent(t *testing.T) {
	// A present zero is data, not a missing field.
	rec := FormatRecord{MM: &SensorSizeRecord{Width: floatPtr(0), Height: floatPtr(24.0)}}

	size, ok := rec.SensorSize()
	if !ok {
		t.Fatal("Expected present zero width to resolve")
	}
	if size.Width != 0 {
		t.Errorf("Expected width 0, got %g", size.Width)
	}
}

func TestPixelCount_IntegerStrictness(t *testing.T) {
	testCases := []struct {
		name     string
		document string
		want     int
		wantSet  bool
	}{
		{
			name:     "Integer literal",
			document: `{"width": 8192, "height": 5464}`,
			want:     8192,
			wantSet:  true,
		},
		{
			name:     "Fractional value",
			document: `{"width": 8192.5, "height": 5464}`,
			wantSet:  false,
		},
		{
			name:     "Scientific notation with fraction",
			document: `{"width": 8.1925e3, "height": 5464}`,
			wantSet:  false,
		},
		{
			name:     "String value",
			document: `{"width": "8192", "height": 5464}`,
			wantSet:  false,
		},
		{
			name:     "Null value",
			document: `{"width": null, "height": 5464}`,
			wantSet:  false,
		},
		{
			name:     "Missing value",
			document: `{"height": 5464}`,
			wantSet:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var rec ResolutionRecord
			if err := json.Unmarshal([]byte(tc.document), &rec); err != nil {
				t.Fatalf("Expected document to parse, got error: %v", err)
			}

			got, set := rec.Width.Int()
			if set != tc.wantSet {
				t.Fatalf("Expected set=%v, got %v", tc.wantSet, set)
			}
			if set && got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestFormatRecord_PixelResolution_RequiresBothIntegers(t *testing.T) {
	rec := FormatRecord{
		Resolution: &ResolutionRecord{
			Width:  PixelCountOf(8192),
			Height: PixelCount{},
		},
	}

	if _, ok := rec.PixelResolution(); ok {
		t.Error("Expected resolution with one unset field to be not applicable")
	}
}

func TestSelection_DerivedValidity(t *testing.T) {
	testCases := []struct {
		name         string
		sel          Selection
		manufacturer bool
		model        bool
		format       bool
	}{
		{
			name:         "Full selection",
			sel:          Selection{Manufacturer: "Acme", Model: "X1", Format: "Full Frame"},
			manufacturer: true,
			model:        true,
			format:       true,
		},
		{
			name: "Unset manufacturer masks descendants",
			sel:  Selection{Manufacturer: "", Model: "X1", Format: "Full Frame"},
		},
		{
			name: "Sentinel manufacturer masks descendants",
			sel:  Selection{Manufacturer: SentinelKey, Model: "X1", Format: "Full Frame"},
		},
		{
			name:         "Unset model masks format",
			sel:          Selection{Manufacturer: "Acme", Model: SentinelKey, Format: "Full Frame"},
			manufacturer: true,
		},
		{
			name:         "Unset format",
			sel:          Selection{Manufacturer: "Acme", Model: "X1", Format: ""},
			manufacturer: true,
			model:        true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sel.ManufacturerSet(); got != tc.manufacturer {
				t.Errorf("Expected ManufacturerSet=%v, got %v", tc.manufacturer, got)
			}
			if got := tc.sel.ModelSet(); got != tc.model {
				t.Errorf("Expected ModelSet=%v, got %v", tc.model, got)
			}
			if got := tc.sel.FormatSet(); got != tc.format {
				t.Errorf("Expected FormatSet=%v, got %v", tc.format, got)
			}
		})
	}
}
