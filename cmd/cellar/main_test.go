// ABOUTME: Tests for CLI flag parsing, settings overrides and catalogue loading
// ABOUTME: Isolates config lookup with CELLAR_CONFIG and temp directories

package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/cellar-go/internal/config"
	cellarlog "github.com/mauromedda/cellar-go/internal/log"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	a, err := parseFlags([]string{"-mode", "raw", "-catalog", "w.yaml", "-print", "-format", "json", "-debug"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if a.mode != "raw" || a.catalog != "w.yaml" || !a.print || a.format != "json" || !a.debug {
		t.Errorf("args = %+v", a)
	}

	a, err = parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if a.format != "text" || a.print || a.save {
		t.Errorf("defaults = %+v", a)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := parseFlags([]string{"-help"}, &out); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-help err = %v; want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "-catalog") {
		t.Errorf("usage missing -catalog:\n%s", out.String())
	}
	if _, err := parseFlags([]string{"-bogus"}, &bytes.Buffer{}); err == nil {
		t.Error("unknown flag accepted")
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CELLAR_CONFIG", filepath.Join(dir, "missing.yaml"))
	return dir
}

func TestLoadSettings(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name     string
		args     cliArgs
		wantMode string
		wantCat  string
		wantErr  bool
	}{
		{name: "defaults", wantMode: config.ModeTea},
		{name: "flag overrides", args: cliArgs{mode: "raw", catalog: "c.yaml"}, wantMode: config.ModeRaw, wantCat: "c.yaml"},
		{name: "bad mode", args: cliArgs{mode: "gui"}, wantErr: true},
		{name: "save without catalogue", args: cliArgs{save: true}, wantErr: true},
		{name: "missing explicit config", args: cliArgs{config: filepath.Join(dir, "nope.yaml")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := loadSettings(tt.args, dir)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("loadSettings succeeded; want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadSettings: %v", err)
			}
			if s.Mode != tt.wantMode || s.Catalog != tt.wantCat {
				t.Errorf("Mode, Catalog = %q, %q; want %q, %q", s.Mode, s.Catalog, tt.wantMode, tt.wantCat)
			}
		})
	}
}

func TestLoadSettings_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cellar.yaml")
	if err := os.WriteFile(path, []byte("mode: raw\nlog_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(cliArgs{config: path, debug: true}, dir)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.Mode != config.ModeRaw || s.LogLevel != "debug" {
		t.Errorf("Mode, LogLevel = %q, %q; want raw, debug", s.Mode, s.LogLevel)
	}
}

func TestApplyLogLevel(t *testing.T) {
	prev := cellarlog.GetLevel()
	t.Cleanup(func() { cellarlog.SetLevel(prev) })

	applyLogLevel(&config.Settings{LogLevel: "warn"}, false)
	if got := cellarlog.GetLevel(); got != cellarlog.LevelWarn {
		t.Errorf("level = %v; want warn", got)
	}
	applyLogLevel(&config.Settings{LogLevel: "warn"}, true)
	if got := cellarlog.GetLevel(); got != cellarlog.LevelDebug {
		t.Errorf("level = %v; want debug", got)
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	store, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog sample: %v", err)
	}
	if store.Len() == 0 {
		t.Error("sample catalogue is empty")
	}

	path := filepath.Join(t.TempDir(), "wines.yaml")
	if err := store.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	loaded, err := loadCatalog(path)
	if err != nil {
		t.Fatalf("loadCatalog file: %v", err)
	}
	if loaded.Len() != store.Len() {
		t.Errorf("Len = %d; want %d", loaded.Len(), store.Len())
	}

	if _, err := loadCatalog(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("loadCatalog of a missing file succeeded")
	}
}
