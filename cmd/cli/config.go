package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/updater"
)

// Config holds the adapter-level settings: where the dataset lives, which
// endpoints serve it, and whether network access is allowed at all.
type Config struct {
	DataDir    string `yaml:"data_dir"`
	SensorsURL string `yaml:"sensors_url"`
	VersionURL string `yaml:"version_url"`
	Online     *bool  `yaml:"online"`
	ServerPort string `yaml:"server_port"`
	TimeoutSec int    `yaml:"timeout_seconds"`
}

// LoadConfig reads the optional config file and applies environment
// overrides. A missing config file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		SensorsURL: updater.DefaultSensorsURL,
		VersionURL: updater.DefaultVersionURL,
		ServerPort: "8060",
		TimeoutSec: 30,
	}

	path := configFilePath()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}

	cfg.DataDir = getEnv("CSD_DATA_DIR", cfg.DataDir)
	cfg.SensorsURL = getEnv("CSD_SENSORS_URL", cfg.SensorsURL)
	cfg.VersionURL = getEnv("CSD_VERSION_URL", cfg.VersionURL)
	cfg.ServerPort = getEnv("CSD_SERVER_PORT", cfg.ServerPort)

	if v := getEnv("CSD_ONLINE", ""); v != "" {
		online, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CSD_ONLINE value %q: %w", v, err)
		}
		cfg.Online = &online
	}

	return cfg, nil
}

// IsOnline reports whether network operations are allowed. Unset means
// online.
func (c *Config) IsOnline() bool {
	return c.Online == nil || *c.Online
}

func configFilePath() string {
	if path := getEnv("CSD_CONFIG", ""); path != "" {
		return path
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "camera-sensor-db", "config.yaml")
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "camera-sensor-db")
}
