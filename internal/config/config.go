package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the application configuration, read from a TOML file. Portal
// credentials do not live here; those come from the environment (see cmd).
type Config struct {
	CalendarID  string `toml:"calendar_id"`
	Weeks       int    `toml:"weeks"`
	PupilID     string `toml:"pupil_id"`
	ClassYearID string `toml:"class_year_id"`
	SchoolYear  string `toml:"school_year"`
}

// Load reads the config file at path, trying the working directory first and
// $HOME/.config/stgc/ second.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, err
		}
		data, err = os.ReadFile(filepath.Join(home, ".config", "stgc", filepath.Base(path)))
		if err != nil {
			return nil, err
		}
	}

	cfg := Config{
		CalendarID: "primary",
		Weeks:      5,
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	return &cfg, nil
}
