package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ToolsConfig locates the external executables the convert adapters drive.
type ToolsConfig struct {
	Java       string `toml:"java"`
	JuicerJar  string `toml:"juicer_jar"`
	Cooler     string `toml:"cooler"`
	ChromSizes string `toml:"chrom_sizes"`
}

// Config is the optional TOML configuration file.
type Config struct {
	Tools ToolsConfig `toml:"tools"`
}

// loadConfig reads the TOML file when path is non-empty, then applies
// HTTABLE_* environment overrides (godotenv may have populated them from a
// .env file at startup). Environment wins over file, flags win over both.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("HTTABLE_JAVA"); v != "" {
		cfg.Tools.Java = v
	}
	if v := os.Getenv("HTTABLE_JUICER_JAR"); v != "" {
		cfg.Tools.JuicerJar = v
	}
	if v := os.Getenv("HTTABLE_COOLER"); v != "" {
		cfg.Tools.Cooler = v
	}
	if v := os.Getenv("HTTABLE_CHROM_SIZES"); v != "" {
		cfg.Tools.ChromSizes = v
	}

	return cfg, nil
}
