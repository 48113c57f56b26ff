// Package config handles loading tdo.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tdo-app/tdo/internal/paths"
)

// DefaultUpcomingDays is the horizon used when no configuration sets one.
const DefaultUpcomingDays = 5

// Config represents the tdo.toml configuration file.
type Config struct {
	Data Data `toml:"data"`
	Todo Todo `toml:"todo"`
}

// Data contains storage-related configuration.
type Data struct {
	// Dir overrides the directory holding todo.txt and the notes
	// subdirectory. Defaults to ~/.local/share/tdo.
	Dir string `toml:"dir"`
}

// Todo contains list-behavior configuration.
type Todo struct {
	// UpcomingDays is the horizon, in days after today, for the
	// upcoming bucket.
	UpcomingDays int `toml:"upcoming-days"`

	// DefaultSort selects the sort applied when a listing does not
	// request one: "default", "priority", or "due".
	DefaultSort string `toml:"default-sort"`
}

// Load loads configuration from the working directory and the global
// config file. Returns defaults if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(workDir, "tdo.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Data.Dir = mergeString(projectMeta.IsDefined("data", "dir"), projectCfg.Data.Dir, globalCfg.Data.Dir)
	merged.Todo.DefaultSort = mergeString(projectMeta.IsDefined("todo", "default-sort"), projectCfg.Todo.DefaultSort, globalCfg.Todo.DefaultSort)

	merged.Todo.UpcomingDays = DefaultUpcomingDays
	if projectMeta.IsDefined("todo", "upcoming-days") {
		merged.Todo.UpcomingDays = projectCfg.Todo.UpcomingDays
	} else if globalMeta.IsDefined("todo", "upcoming-days") {
		merged.Todo.UpcomingDays = globalCfg.Todo.UpcomingDays
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// DataDir resolves the data directory: the TDO_DATA_DIR environment
// variable wins, then the merged config, then the built-in default.
func (c *Config) DataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("TDO_DATA_DIR")); dir != "" {
		return dir, nil
	}
	return paths.ResolveWithDefault(c.Data.Dir, paths.DefaultDataDir)
}
