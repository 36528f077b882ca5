package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "camera-sensor-db",
	Short: "Camera Sensor Database - sensor dimension lookup and apply tool",
	Long: `Camera Sensor Database looks up physical sensor dimensions and pixel
resolutions for camera manufacturer/model/format combinations and applies
them to host camera and render settings.`,
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	app := NewApp(cfg)
	app.Store.Load()

	ctx := context.WithValue(context.Background(), "app", app)
	rootCmd.SetContext(ctx)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
