// ABOUTME: Settings loading with global + local YAML merge and defaults
// ABOUTME: Missing files are not errors; malformed files and invalid values are

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/cellar-go/internal/log"
)

// Front-end modes.
const (
	ModeTea = "tea"
	ModeRaw = "raw"
)

// OverlaySettings are the defaults applied to every surface.
type OverlaySettings struct {
	CloseButton *bool  `yaml:"close_button,omitempty"`
	MaxWidth    int    `yaml:"max_width,omitempty"`
	Gutter      *int   `yaml:"gutter,omitempty"`
	Position    string `yaml:"position,omitempty"`
}

// Settings holds the merged configuration.
type Settings struct {
	LogLevel    string              `yaml:"log_level,omitempty"`
	Catalog     string              `yaml:"catalog,omitempty"`
	Mode        string              `yaml:"mode,omitempty"`
	Overlay     OverlaySettings     `yaml:"overlay,omitempty"`
	Keybindings map[string][]string `yaml:"keybindings,omitempty"`
}

// Defaults returns the settings used when no file says otherwise.
func Defaults() *Settings {
	closeButton := true
	gutter := 1
	return &Settings{
		LogLevel: "info",
		Mode:     ModeTea,
		Overlay: OverlaySettings{
			CloseButton: &closeButton,
			MaxWidth:    72,
			Gutter:      &gutter,
			Position:    "center",
		},
	}
}

// Load merges defaults, the global file and the local file under root,
// later sources winning, then expands ${VAR} references and validates.
func Load(root string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	local, err := loadFile(LocalConfigFile(root))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading local config: %w", err)
	}
	return finish(merge(merge(Defaults(), global), local))
}

// LoadFile merges a single explicitly named file onto the defaults. Unlike
// Load, a missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return finish(merge(Defaults(), s))
}

func finish(s *Settings) (*Settings, error) {
	ResolveEnvVars(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile reads Settings from a YAML file. A missing file yields empty
// settings together with an os.ErrNotExist error.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug("config: loaded %s", path)
	return &s, nil
}

// merge overlays non-zero fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}
	result := *base

	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	if over.Catalog != "" {
		result.Catalog = over.Catalog
	}
	if over.Mode != "" {
		result.Mode = over.Mode
	}
	if over.Overlay.CloseButton != nil {
		result.Overlay.CloseButton = over.Overlay.CloseButton
	}
	if over.Overlay.MaxWidth != 0 {
		result.Overlay.MaxWidth = over.Overlay.MaxWidth
	}
	if over.Overlay.Gutter != nil {
		result.Overlay.Gutter = over.Overlay.Gutter
	}
	if over.Overlay.Position != "" {
		result.Overlay.Position = over.Overlay.Position
	}
	if len(over.Keybindings) > 0 {
		kb := make(map[string][]string, len(base.Keybindings)+len(over.Keybindings))
		for k, v := range base.Keybindings {
			kb[k] = v
		}
		for k, v := range over.Keybindings {
			kb[k] = v
		}
		result.Keybindings = kb
	}
	return &result
}

// Validate rejects values no front-end can use.
func (s *Settings) Validate() error {
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	switch s.Mode {
	case ModeTea, ModeRaw:
	default:
		return fmt.Errorf("config mode: unknown mode %q (want %q or %q)", s.Mode, ModeTea, ModeRaw)
	}
	switch s.Overlay.Position {
	case "", "center", "top", "bottom":
	default:
		return fmt.Errorf("config overlay.position: unknown position %q", s.Overlay.Position)
	}
	if s.Overlay.MaxWidth < 0 {
		return fmt.Errorf("config overlay.max_width: must not be negative, got %d", s.Overlay.MaxWidth)
	}
	if s.Overlay.Gutter != nil && *s.Overlay.Gutter < 0 {
		return fmt.Errorf("config overlay.gutter: must not be negative, got %d", *s.Overlay.Gutter)
	}
	return nil
}

// CloseButton reports the dismiss-control default.
func (s *Settings) CloseButton() bool {
	return s.Overlay.CloseButton == nil || *s.Overlay.CloseButton
}

// Gutter returns the scrollbar gutter width.
func (s *Settings) Gutter() int {
	if s.Overlay.Gutter == nil {
		return 1
	}
	return *s.Overlay.Gutter
}
