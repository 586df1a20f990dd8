// ABOUTME: Tests for settings loading, merging and validation
// ABOUTME: Uses temp directories and CELLAR_CONFIG for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false
	base := Defaults()
	base.Keybindings = map[string][]string{"cancel": {"esc"}, "quit": {"q"}}
	over := &Settings{
		LogLevel:    "debug",
		Overlay:     OverlaySettings{CloseButton: &off, MaxWidth: 50},
		Keybindings: map[string][]string{"quit": {"ctrl+q"}},
	}

	got := merge(base, over)

	if got.LogLevel != "debug" || got.Mode != ModeTea {
		t.Errorf("LogLevel, Mode = %q, %q; want debug, tea", got.LogLevel, got.Mode)
	}
	if got.CloseButton() || got.Overlay.MaxWidth != 50 || got.Gutter() != 1 {
		t.Errorf("Overlay = %+v", got.Overlay)
	}
	if got.Keybindings["cancel"][0] != "esc" || got.Keybindings["quit"][0] != "ctrl+q" {
		t.Errorf("Keybindings = %v", got.Keybindings)
	}
	if base.Keybindings["quit"][0] != "q" {
		t.Error("merge mutated the base keybindings")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	if merge(nil, nil) == nil {
		t.Fatal("merge(nil, nil) = nil; want empty settings")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/cellar/config.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v; want ErrNotExist", err)
	}
	if s == nil {
		t.Error("loadFile returned nil settings for a missing file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "overlay: [unclosed")

	if _, err := loadFile(path); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Errorf("err = %v; want parsing error", err)
	}
}

func TestLoad_GlobalThenLocal(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global.yaml")
	writeFile(t, global, "log_level: warn\ncatalog: ${CELLAR_TEST_DIR}/wines.yaml\noverlay:\n  max_width: 40\n")
	writeFile(t, filepath.Join(dir, ".cellar.yaml"), "mode: raw\noverlay:\n  position: top\n")
	t.Setenv("CELLAR_CONFIG", global)
	t.Setenv("CELLAR_TEST_DIR", "/srv")

	s, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.LogLevel != "warn" || s.Mode != ModeRaw || s.Overlay.MaxWidth != 40 || s.Overlay.Position != "top" {
		t.Errorf("settings = %+v", s)
	}
	if s.Catalog != "/srv/wines.yaml" {
		t.Errorf("Catalog = %q; want /srv/wines.yaml", s.Catalog)
	}
	if !s.CloseButton() {
		t.Error("CloseButton() = false; want default true")
	}
}

func TestLoad_NoFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CELLAR_CONFIG", filepath.Join(dir, "missing.yaml"))

	s, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Overlay.MaxWidth != 72 || s.Mode != ModeTea {
		t.Errorf("settings = %+v; want defaults", s)
	}
}

func TestLoadFile_Explicit(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v; want ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "c.yaml")
	writeFile(t, path, "overlay:\n  gutter: 0\n")
	s, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Gutter() != 0 {
		t.Errorf("Gutter() = %d; want 0", s.Gutter())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	neg := -1
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"bad level", func(s *Settings) { s.LogLevel = "loud" }, "log_level"},
		{"bad mode", func(s *Settings) { s.Mode = "gui" }, "mode"},
		{"bad position", func(s *Settings) { s.Overlay.Position = "left" }, "position"},
		{"negative width", func(s *Settings) { s.Overlay.MaxWidth = -3 }, "max_width"},
		{"negative gutter", func(s *Settings) { s.Overlay.Gutter = &neg }, "gutter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Defaults()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v; want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v; want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("CELLAR_CONFIG", "")

	dir := GlobalDir()
	if got, want := GlobalConfigFile(), filepath.Join(dir, "config.yaml"); got != want {
		t.Errorf("GlobalConfigFile() = %q; want %q", got, want)
	}
	if got, want := LogFile(), filepath.Join(dir, "cellar.log"); got != want {
		t.Errorf("LogFile() = %q; want %q", got, want)
	}
	if got, want := LocalConfigFile("/x"), filepath.Join("/x", ".cellar.yaml"); got != want {
		t.Errorf("LocalConfigFile() = %q; want %q", got, want)
	}

	t.Setenv("CELLAR_CONFIG", "/etc/cellar.yaml")
	if got := GlobalConfigFile(); got != "/etc/cellar.yaml" {
		t.Errorf("GlobalConfigFile() = %q; want /etc/cellar.yaml", got)
	}
}
