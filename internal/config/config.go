package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "cardsmith"

// Config represents the application configuration
type Config struct {
	DefaultLibrary string `toml:"default_library"`
	// Tint colours rendered cards by rarity when writing to a terminal.
	Tint bool `toml:"tint"`
	// StrictArt makes library validation treat off-size art as an error.
	StrictArt bool `toml:"strict_art"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetLibraryRoot returns the directory holding installed card libraries
func GetLibraryRoot() string {
	return filepath.Join(GetXDGDataHome(), appName, "libraries")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetCacheDir returns the directory for art converted from images
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName, "art_cache")
}

// LoadConfig loads the config file, writing a default one on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{
		DefaultLibrary: "starter",
		Tint:           true,
	}
	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetLibraryPath returns the path to a library, either in the library root or a relative path
func GetLibraryPath(name string) (string, error) {
	libraryPath := filepath.Join(GetLibraryRoot(), name)
	if _, err := os.Stat(libraryPath); err == nil {
		return libraryPath, nil
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("library not found: %s", name)
}

// GetDefaultLibrary returns the default library name from config
func GetDefaultLibrary() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultLibrary, nil
}

// SetDefaultLibrary sets the default library in the config
func SetDefaultLibrary(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.DefaultLibrary = name
	return saveConfig(config)
}
