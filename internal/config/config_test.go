package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stgc.toml")
	contents := `calendar_id = "abc123@group.calendar.google.com"
weeks = 3
pupil_id = "2400236422"
class_year_id = "2400011867"
school_year = "25"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.CalendarID != "abc123@group.calendar.google.com" {
		t.Errorf("CalendarID = %q", cfg.CalendarID)
	}
	if cfg.Weeks != 3 {
		t.Errorf("Weeks = %d, want 3", cfg.Weeks)
	}
	if cfg.PupilID != "2400236422" || cfg.ClassYearID != "2400011867" || cfg.SchoolYear != "25" {
		t.Errorf("diary fields = %+v", cfg)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stgc.toml")
	if err := os.WriteFile(path, []byte(`pupil_id = "1"`), 0644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.CalendarID != "primary" {
		t.Errorf("CalendarID default = %q, want %q", cfg.CalendarID, "primary")
	}
	if cfg.Weeks != 5 {
		t.Errorf("Weeks default = %d, want 5", cfg.Weeks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() on a missing file should fail")
	}
}
