package hostenv

import (
	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/models"
	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/selector"
)

// ApplySensor writes the selected format's physical dimensions onto the
// camera and forces horizontal sensor fit. It reports whether anything was
// applied: a selection that misses the dataset is an error-class message, a
// leaf without sensor data is a warning, and both are no-ops.
func ApplySensor(ds models.SensorDataset, sel models.Selection, cam Camera, rep Reporter) bool {
	rec, ok := selector.LookupFormat(ds, sel.Manufacturer, sel.Model, sel.Format)
	if !ok {
		rep.Error("Could not apply sensor settings. Data not found.")
		return false
	}

	size, ok := rec.SensorSize()
	if !ok {
		rep.Warning("Selected format has no sensor data.")
		return false
	}

	cam.SetSensorFit(SensorFitHorizontal)
	cam.SetSensorSize(size.Width, size.Height)
	rep.Info("Sensor set to: %gmm x %gmm", size.Width, size.Height)
	return true
}

// ApplyResolution writes the selected format's pixel counts onto the render
// settings, with the same degradation rules as ApplySensor.
func ApplyResolution(ds models.SensorDataset, sel models.Selection, render RenderSettings, rep Reporter) bool {
	rec, ok := selector.LookupFormat(ds, sel.Manufacturer, sel.Model, sel.Format)
	if !ok {
		rep.Error("Could not apply resolution settings. Data not found.")
		return false
	}

	res, ok := rec.PixelResolution()
	if !ok {
		rep.Warning("Selected format has no resolution data.")
		return false
	}

	render.SetResolution(res.Width, res.Height)
	rep.Info("Resolution set to: %d x %d", res.Width, res.Height)
	return true
}

// CanApplyResolution is the poll guard for ApplyResolution: true only when
// the full selection resolves to integer pixel counts.
func CanApplyResolution(ds models.SensorDataset, sel models.Selection) bool {
	_, ok := selector.ResolveResolution(ds, sel.Manufacturer, sel.Model, sel.Format)
	return ok
}
