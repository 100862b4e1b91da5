// conf/defaults.go default values for settings
package conf

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "LegacyRecorder")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "logs/legacyrecorder.log")

	appDir, err := DefaultAppDir()
	if err != nil {
		// Home directory unresolvable, fall back to relative paths
		appDir = "."
	}
	viper.SetDefault("storage.appdir", appDir)
	viper.SetDefault("storage.entriesdir", filepath.Join(appDir, "entries"))
	viper.SetDefault("storage.sqlite.path", filepath.Join(appDir, "legacy.db"))

	viper.SetDefault("audio.source", "sysdefault")

	viper.SetDefault("reminders.enabled", true)
	viper.SetDefault("reminders.morning", "08:00")
	viper.SetDefault("reminders.evening", "21:00")

	viper.SetDefault("ui.fontsize", 12)
	viper.SetDefault("ui.theme", "dark")
}
