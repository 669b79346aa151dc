package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false for %s", path)
	}
	if cfg.Sink.Intensity != "medium" {
		t.Fatalf("default intensity: got %q", cfg.Sink.Intensity)
	}
	if cfg.Sink.DisplayName != "Spatial Audio" {
		t.Fatalf("default display name: got %q", cfg.Sink.DisplayName)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		`log_format = "json"`,
		`[sink]`,
		`intensity = "HEAVY"`,
		`device_id = " alsa_output.usb-dac.analog-stereo "`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Sink.Intensity != "heavy" {
		t.Fatalf("intensity not normalized: got %q", cfg.Sink.Intensity)
	}
	if cfg.Sink.DeviceID != "alsa_output.usb-dac.analog-stereo" {
		t.Fatalf("device id not trimmed: got %q", cfg.Sink.DeviceID)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("log format: got %q", cfg.LogFormat)
	}
	// untouched keys keep defaults
	if cfg.Paths.ConfDir == "" {
		t.Fatal("conf dir default lost")
	}
}

func TestValidateRejectsUnknownIntensity(t *testing.T) {
	cfg := Default()
	cfg.Sink.Intensity = "extreme"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestArtifactPaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.ConfDir = "/home/u/.config/pipewire/pipewire.conf.d"
	cfg.Paths.StateDir = "/home/u/.local/state/spatial"

	if got := cfg.ConfFilePath(); got != "/home/u/.config/pipewire/pipewire.conf.d/99-spatial-sink.conf" {
		t.Fatalf("conf path: %s", got)
	}
	if got := cfg.InstalledAssetPath(); got != "/home/u/.config/pipewire/spatial-ir.wav" {
		t.Fatalf("asset path: %s", got)
	}
	if got := cfg.HistoryDBPath(); got != "/home/u/.local/state/spatial/history.db" {
		t.Fatalf("history path: %s", got)
	}
}

func TestCreateSampleParses(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not detected")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample should validate: %v", err)
	}
}
