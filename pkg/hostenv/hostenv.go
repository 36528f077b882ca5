// Package hostenv defines the host collaborator surface: the camera and
// render-settings objects the resolved values are written to, and the
// reporter that carries status messages back for display. The host supplies
// concrete implementations per invocation.
package hostenv

// SensorFit selects which camera axis the sensor width maps to.
type SensorFit string

// SensorFitHorizontal fits the sensor to the horizontal axis. Applying a
// sensor always forces this fit so width and height keep their meaning.
const SensorFitHorizontal SensorFit = "HORIZONTAL"

// Camera is the host camera object sensor dimensions are applied to.
type Camera interface {
	SetSensorFit(fit SensorFit)
	SetSensorSize(widthMM, heightMM float64)
}

// RenderSettings is the host render-settings object pixel resolutions are
// applied to.
type RenderSettings interface {
	SetResolution(width, height int)
}

// Reporter receives human-readable status messages classified by severity.
type Reporter interface {
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}
