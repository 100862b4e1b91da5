// config.go: This file contains the configuration for the Legacy Recorder application.
// It defines the settings struct and functions to load and save the settings.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// LogConfig contains settings for a component log file.
type LogConfig struct {
	Enabled bool   // true to enable file logging
	Path    string // path to log file
}

// MainSettings contains application level settings.
type MainSettings struct {
	Name string    // name of the node
	Log  LogConfig // main log settings
}

// StorageSettings contains paths for the record store and the entry files.
type StorageSettings struct {
	AppDir     string // application data directory, defaults to ~/LegacyRecorder
	EntriesDir string // root of the per-day entry files, defaults to <appdir>/entries
	SQLite     struct {
		Path string // path to SQLite database file
	}
}

// AudioSettings contains settings for audio capture and playback.
type AudioSettings struct {
	Source string // capture device to use, "sysdefault" for OS default
}

// ReminderSettings contains the daily reminder configuration.
type ReminderSettings struct {
	Enabled bool   // true to enable daily reminders
	Morning string // morning reminder time as HH:MM, local time
	Evening string // evening reminder time as HH:MM, local time
}

// UISettings carries presentation preferences persisted for the UI collaborator.
// The core does not interpret them beyond load/save.
type UISettings struct {
	FontSize int    // editor font size
	Theme    string // "dark" or "light"
}

// Settings contains all runtime settings for the application.
type Settings struct {
	Debug bool // true to enable debug log output

	Main      MainSettings
	Storage   StorageSettings
	Audio     AudioSettings
	Reminders ReminderSettings
	UI        UISettings
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into Settings.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	// Initialize viper and read config
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	// Unmarshal the config into settings
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	// Validate settings
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig writes the current defaults to the primary config path
// so that later runs find a file the user can edit.
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}

	if err := viper.SafeWriteConfigAs(configPath); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	return viper.ReadInConfig()
}

// GetSettings returns the current settings instance
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// GetDefaultConfigPaths returns the config file search paths in priority order:
// the application directory first, then the current working directory.
func GetDefaultConfigPaths() ([]string, error) {
	appDir, err := DefaultAppDir()
	if err != nil {
		return nil, err
	}
	return []string{filepath.Join(appDir, "config"), "."}, nil
}

// DefaultAppDir returns the default application data directory.
func DefaultAppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(home, "LegacyRecorder"), nil
}

// EnsureDirectories creates the application data directories if missing.
func EnsureDirectories(settings *Settings) error {
	dirs := []string{
		settings.Storage.AppDir,
		settings.Storage.EntriesDir,
		filepath.Dir(settings.Storage.SQLite.Path),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	return nil
}
