package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/hostenv"
	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/models"
)

var (
	applyScenePath  string
	applySensor     bool
	applyResolution bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <manufacturer> <model> <format>",
	Short: "Apply sensor dimensions and/or resolution to a scene file",
	Long: `Resolve the selected format and write its sensor dimensions onto the
scene's camera and its pixel resolution onto the scene's render settings.
Without --sensor or --resolution both are applied.`,
	Args: cobra.ExactArgs(3),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyScenePath, "scene", "scene.json", "scene file to apply the values to")
	applyCmd.Flags().BoolVar(&applySensor, "sensor", false, "apply only the sensor dimensions")
	applyCmd.Flags().BoolVar(&applyResolution, "resolution", false, "apply only the render resolution")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	app := appFrom(cmd)
	ds := app.Store.Dataset()

	sel := models.Selection{
		Manufacturer: args[0],
		Model:        args[1],
		Format:       args[2],
	}

	scene, err := LoadSceneFile(applyScenePath)
	if err != nil {
		return err
	}

	doSensor := applySensor || !applyResolution
	doResolution := applyResolution || !applySensor

	reporter := consoleReporter{}
	applied := false

	if doSensor {
		applied = hostenv.ApplySensor(ds, sel, scene, reporter) || applied
	}
	if doResolution {
		applied = hostenv.ApplyResolution(ds, sel, scene, reporter) || applied
	}

	if !applied {
		return nil
	}

	if err := scene.Save(); err != nil {
		return err
	}

	fmt.Printf("✓ Scene saved to %s\n", applyScenePath)
	return nil
}

// consoleReporter prints host status messages to stdout.
type consoleReporter struct{}

func (consoleReporter) Info(format string, args ...any) {
	fmt.Printf("✓ "+format+"\n", args...)
}

func (consoleReporter) Warning(format string, args ...any) {
	fmt.Printf("⚠ "+format+"\n", args...)
}

func (consoleReporter) Error(format string, args ...any) {
	fmt.Printf("❌ "+format+"\n", args...)
}
