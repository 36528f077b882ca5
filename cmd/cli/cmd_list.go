package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/selector"
)

var listCmd = &cobra.Command{
	Use:   "list [manufacturer] [model]",
	Short: "List manufacturers, models or sensor formats",
	Long: `List the available choices at each cascade level: manufacturers with no
arguments, models for a manufacturer, and sensor formats for a
manufacturer and model.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	app := appFrom(cmd)
	ds := app.Store.Dataset()

	var title string
	var choices []selector.Choice

	switch len(args) {
	case 0:
		title = "Manufacturers"
		choices = selector.ManufacturerChoices(ds)
	case 1:
		title = fmt.Sprintf("Models - %s", args[0])
		choices = selector.ModelChoices(ds, args[0])
	case 2:
		title = fmt.Sprintf("Sensor Formats - %s %s", args[0], args[1])
		choices = selector.FormatChoices(ds, args[0], args[1])
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))

	if selector.IsSentinel(choices) {
		fmt.Println(choices[0].Label)
		if choices[0].Description != "" {
			fmt.Println(choices[0].Description)
		}
	} else {
		for i, choice := range choices {
			fmt.Printf("[%d] %s\n", i+1, choice.Label)
		}
	}

	fmt.Println(strings.Repeat("=", 60) + "\n")

	return nil
}
