package conf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/errors"
)

// ValidateSettings checks the loaded settings for values the rest of the
// application depends on being well formed.
func ValidateSettings(settings *Settings) error {
	if settings.Storage.SQLite.Path == "" {
		return errors.Newf("storage.sqlite.path must not be empty").
			Component("conf").
			Category(errors.CategoryConfig).
			Build()
	}
	if settings.Storage.EntriesDir == "" {
		return errors.Newf("storage.entriesdir must not be empty").
			Component("conf").
			Category(errors.CategoryConfig).
			Build()
	}

	for _, tc := range []struct{ field, value string }{
		{"reminders.morning", settings.Reminders.Morning},
		{"reminders.evening", settings.Reminders.Evening},
	} {
		if _, _, err := ParseClockTime(tc.value); err != nil {
			return errors.New(err).
				Component("conf").
				Category(errors.CategoryConfig).
				Context("field", tc.field).
				Build()
		}
	}

	if settings.UI.FontSize < 8 || settings.UI.FontSize > 32 {
		return errors.Newf("ui.fontsize %d out of range 8-32", settings.UI.FontSize).
			Component("conf").
			Category(errors.CategoryConfig).
			Build()
	}

	return nil
}

// ParseClockTime parses a 24-hour "HH:MM" string into an hour and minute.
func ParseClockTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}
