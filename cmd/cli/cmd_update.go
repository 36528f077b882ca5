package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for and download sensor database updates",
	Long:  `Check the remote sensor database version and download a newer copy.`,
}

var updateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if a new sensor database is available",
	RunE:  runUpdateCheck,
}

var updateDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the latest sensor database",
	RunE:  runUpdateDownload,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.AddCommand(updateCheckCmd)
	updateCmd.AddCommand(updateDownloadCmd)
}

func runUpdateCheck(cmd *cobra.Command, args []string) error {
	app := appFrom(cmd)

	available, err := app.Updater.CheckForUpdate(cmd.Context())
	if err != nil {
		reportUpdateError("Update check", err)
		return nil
	}

	if available {
		fmt.Println("✓ An update for the sensor database is available.")
	} else {
		fmt.Println("✓ Sensor database is up to date.")
	}

	prefs := app.Prefs.Load()
	fmt.Printf("Last checked: %s\n", prefs.LastChecked)

	return nil
}

func runUpdateDownload(cmd *cobra.Command, args []string) error {
	app := appFrom(cmd)

	if err := app.Updater.Download(cmd.Context()); err != nil {
		reportUpdateError("Download", err)
		return nil
	}

	fmt.Printf("✓ Sensor database saved to %s\n", app.Store.FilePath())
	return nil
}

// reportUpdateError maps the updater error taxonomy onto user-facing
// severities: disabled network access is a warning, everything else an
// error. Nothing is retried; recovery is user-initiated.
func reportUpdateError(op string, err error) {
	if errors.Is(err, updater.ErrNetworkUnavailable) {
		fmt.Printf("⚠ %s cancelled: %v.\n", op, err)
		return
	}
	fmt.Printf("❌ %s failed: %v\n", op, err)
}
