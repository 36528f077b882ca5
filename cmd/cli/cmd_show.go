package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/selector"
)

var showCmd = &cobra.Command{
	Use:   "show <manufacturer> <model> <format>",
	Short: "Show the sensor data for a full selection",
	Long:  `Display the physical sensor dimensions and pixel resolution of a format.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	app := appFrom(cmd)
	ds := app.Store.Dataset()
	manufacturer, model, format := args[0], args[1], args[2]

	rec, ok := selector.LookupFormat(ds, manufacturer, model, format)
	if !ok {
		fmt.Printf("No data found for %s / %s / %s.\n", manufacturer, model, format)
		return nil
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("%s %s - %s\n", manufacturer, model, format)
	fmt.Println(strings.Repeat("=", 60))

	if size, ok := rec.SensorSize(); ok {
		fmt.Printf("Sensor size: %gmm x %gmm\n", size.Width, size.Height)
	} else {
		fmt.Println("Sensor size: n/a")
	}

	if res, ok := rec.PixelResolution(); ok {
		fmt.Printf("Resolution:  %d x %d\n", res.Width, res.Height)
	} else {
		fmt.Println("Resolution:  n/a")
	}

	fmt.Println(strings.Repeat("=", 60) + "\n")

	return nil
}
