package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/hostenv"
)

// SceneFile is a JSON-backed stand-in for the host's camera and
// render-settings objects, so apply operations can run outside a host.
type SceneFile struct {
	path string

	Camera struct {
		SensorFit    string  `json:"sensor_fit"`
		SensorWidth  float64 `json:"sensor_width"`
		SensorHeight float64 `json:"sensor_height"`
	} `json:"camera"`
	Render struct {
		ResolutionX int `json:"resolution_x"`
		ResolutionY int `json:"resolution_y"`
	} `json:"render"`
}

// LoadSceneFile reads a scene file, or starts an empty scene when the file
// does not exist yet.
func LoadSceneFile(path string) (*SceneFile, error) {
	scene := &SceneFile{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return scene, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	if err := json.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	return scene, nil
}

// Save writes the scene back to its file.
func (s *SceneFile) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

func (s *SceneFile) SetSensorFit(fit hostenv.SensorFit) {
	s.Camera.SensorFit = string(fit)
}

func (s *SceneFile) SetSensorSize(widthMM, heightMM float64) {
	s.Camera.SensorWidth = widthMM
	s.Camera.SensorHeight = heightMM
}

func (s *SceneFile) SetResolution(width, height int) {
	s.Render.ResolutionX = width
	s.Render.ResolutionY = height
}
