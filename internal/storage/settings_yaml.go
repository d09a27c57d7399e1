package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

// yamlSettings mirrors settings.yaml. Pointers tell a missing key from a zero value.
type yamlSettings struct {
	WorkMinutes  int      `yaml:"work_minutes"`
	BreakMinutes int      `yaml:"break_minutes"`
	Sound        *bool    `yaml:"sound"`
	Volume       *float64 `yaml:"volume"`
	Notify       *bool    `yaml:"notify"`
}

// LoadSettings reads startup preferences for appName. The file is never written;
// if it does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := platform.SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads preferences from configPath. Values that are out of
// range are ignored one field at a time.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if model.ValidateMinutes(fileData.WorkMinutes) == nil {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if model.ValidateMinutes(fileData.BreakMinutes) == nil {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}

	if fileData.Volume != nil && *fileData.Volume >= preferences.MinVolume && *fileData.Volume <= preferences.MaxVolume {
		settings.Volume = *fileData.Volume
	}
	if fileData.Sound != nil {
		settings.Sound = *fileData.Sound
	}
	if fileData.Notify != nil {
		settings.Notify = *fileData.Notify
	}
}
