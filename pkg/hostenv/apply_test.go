package hostenv

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/models"
)

// MockCamera implements the Camera interface for testing
type MockCamera struct {
	fit    SensorFit
	width  float64
	height float64
	sets   int
}

func (m *MockCamera) SetSensorFit(fit SensorFit) {
	m.fit = fit
}

func (m *MockCamera) SetSensorSize(widthMM, heightMM float64) {
	m.width = widthMM
	m.height = heightMM
	m.sets++
}

// MockRenderSettings implements the RenderSettings interface for testing
type MockRenderSettings struct {
	width  int
	height int
	sets   int
}

func (m *MockRenderSettings) SetResolution(width, height int) {
	m.width = width
	m.height = height
	m.sets++
}

// MockReporter records classified status messages
type MockReporter struct {
	infos    []string
	warnings []string
	errors   []string
}

func (m *MockReporter) Info(format string, args ...any) {
	m.infos = append(m.infos, fmt.Sprintf(format, args...))
}

func (m *MockReporter) Warning(format string, args ...any) {
	m.warnings = append(m.warnings, fmt.Sprintf(format, args...))
}

func (m *MockReporter) Error(format string, args ...any) {
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}

func testDataset(t *testing.T) models.SensorDataset {
	t.Helper()

	data := []byte(`{
		"Acme": {
			"X1": {
				"sensor dimensions": {
					"Full Frame": {
						"mm": {"width": 36.0, "height": 24.0},
						"resolution": {"width": 8192, "height": 5464}
					},
					"Super 35": {
						"mm": {"width": 24.89, "height": 18.66}
					},
					"Broken": {
						"resolution": {"width": 8192.5, "height": 5464}
					}
				}
			}
		}
	}`)

	var ds models.SensorDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		t.Fatalf("Failed to build test dataset: %v", err)
	}
	return ds
}

func fullSelection() models.Selection {
	return models.Selection{Manufacturer: "Acme", Model: "X1", Format: "Full Frame"}
}

func TestApplySensor(t *testing.T) {
	ds := testDataset(t)
	cam := &MockCamera{}
	rep := &MockReporter{}

	if !ApplySensor(ds, fullSelection(), cam, rep) {
		t.Fatal("Expected sensor to be applied")
	}

	if cam.fit != SensorFitHorizontal {
		t.Errorf("Expected horizontal sensor fit, got %q", cam.fit)
	}
	if cam.width != 36.0 || cam.height != 24.0 {
		t.Errorf("Expected 36x24, got %gx%g", cam.width, cam.height)
	}
	if len(rep.infos) != 1 {
		t.Fatalf("Expected 1 info message, got %d", len(rep.infos))
	}
	if rep.infos[0] != "Sensor set to: 36mm x 24mm" {
		t.Errorf("Unexpected info message: %q", rep.infos[0])
	}
}

func TestApplySensor_LookupMissIsError(t *testing.T) {
	ds := testDataset(t)
	cam := &MockCamera{}
	rep := &MockReporter{}

	sel := models.Selection{Manufacturer: "Acme", Model: "X1", Format: "Nonexistent"}
	if ApplySensor(ds, sel, cam, rep) {
		t.Fatal("Expected apply to be a no-op")
	}

	if cam.sets != 0 {
		t.Error("Expected no camera mutation on lookup miss")
	}
	if len(rep.errors) != 1 {
		t.Fatalf("Expected 1 error message, got %d", len(rep.errors))
	}
}

func TestApplySensor_MissingDataIsWarning(t *testing.T) {
	ds := testDataset(t)
	cam := &MockCamera{}
	rep := &MockReporter{}

	// Broken resolves to a leaf, but the leaf has no mm data.
	sel := models.Selection{Manufacturer: "Acme", Model: "X1", Format: "Broken"}
	if ApplySensor(ds, sel, cam, rep) {
		t.Fatal("Expected apply to be a no-op")
	}

	if cam.sets != 0 {
		t.Error("Expected no camera mutation when data is missing")
	}
	if len(rep.warnings) != 1 {
		t.Fatalf("Expected 1 warning message, got %d", len(rep.warnings))
	}
	if len(rep.errors) != 0 {
		t.Errorf("Expected no error messages, got %v", rep.errors)
	}
}

func TestApplyResolution(t *testing.T) {
	ds := testDataset(t)
	render := &MockRenderSettings{}
	rep := &MockReporter{}

	if !ApplyResolution(ds, fullSelection(), render, rep) {
		t.Fatal("Expected resolution to be applied")
	}

	if render.width != 8192 || render.height != 5464 {
		t.Errorf("Expected 8192x5464, got %dx%d", render.width, render.height)
	}
	if len(rep.infos) != 1 || rep.infos[0] != "Resolution set to: 8192 x 5464" {
		t.Errorf("Unexpected info messages: %v", rep.infos)
	}
}

func TestApplyResolution_FractionalIsWarning(t *testing.T) {
	ds := testDataset(t)
	render := &MockRenderSettings{}
	rep := &MockReporter{}

	sel := models.Selection{Manufacturer: "Acme", Model: "X1", Format: "Broken"}
	if ApplyResolution(ds, sel, render, rep) {
		t.Fatal("Expected apply to be a no-op")
	}

	if render.sets != 0 {
		t.Error("Expected no render mutation for fractional resolution")
	}
	if len(rep.warnings) != 1 {
		t.Fatalf("Expected 1 warning message, got %d", len(rep.warnings))
	}
}

func TestApplyResolution_NoResolutionDataIsWarning(t *testing.T) {
	ds := testDataset(t)
	render := &MockRenderSettings{}
	rep := &MockReporter{}

	sel := models.Selection{Manufacturer: "Acme", Model: "X1", Format: "Super 35"}
	if ApplyResolution(ds, sel, render, rep) {
		t.Fatal("Expected apply to be a no-op")
	}
	if len(rep.warnings) != 1 {
		t.Fatalf("Expected 1 warning message, got %d", len(rep.warnings))
	}
}

func TestCanApplyResolution(t *testing.T) {
	ds := testDataset(t)

	testCases := []struct {
		name string
		sel  models.Selection
		want bool
	}{
		{
			name: "Integer resolution",
			sel:  fullSelection(),
			want: true,
		},
		{
			name: "Fractional resolution",
			sel:  models.Selection{Manufacturer: "Acme", Model: "X1", Format: "Broken"},
			want: false,
		},
		{
			name: "No resolution data",
			sel:  models.Selection{Manufacturer: "Acme", Model: "X1", Format: "Super 35"},
			want: false,
		},
		{
			name: "No selection",
			sel:  models.Selection{},
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanApplyResolution(ds, tc.sel); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestApply_EmptyDataset(t *testing.T) {
	cam := &MockCamera{}
	render := &MockRenderSettings{}
	rep := &MockReporter{}

	ds := models.SensorDataset{}

	if ApplySensor(ds, fullSelection(), cam, rep) {
		t.Error("Expected sensor apply to miss on empty dataset")
	}
	if ApplyResolution(ds, fullSelection(), render, rep) {
		t.Error("Expected resolution apply to miss on empty dataset")
	}
	if len(rep.errors) != 2 {
		t.Errorf("Expected 2 error messages, got %d", len(rep.errors))
	}
}
