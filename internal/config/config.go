package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	ConfDir  string `toml:"conf_dir"`
	AssetDir string `toml:"asset_dir"`
	StateDir string `toml:"state_dir"`
}

// Sink contains defaults for the virtual sink being installed.
type Sink struct {
	Intensity   string `toml:"intensity"`
	DisplayName string `toml:"display_name"`
	DeviceID    string `toml:"device_id"`
}

// Config is the root configuration document.
type Config struct {
	Paths     Paths  `toml:"paths"`
	Sink      Sink   `toml:"sink"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ConfFileName is the drop-in fragment name under the PipeWire conf dir.
const ConfFileName = "99-spatial-sink.conf"

// InstalledAssetName is the well-known name of the impulse response copy
// referenced by the installed configuration.
const InstalledAssetName = "spatial-ir.wav"

// HistoryDBName is the sqlite journal file under the state dir.
const HistoryDBName = "history.db"

// Load reads configuration from path, or from the default location when path
// is empty. A missing file yields defaults; exists reports whether a file was
// read.
func Load(path string) (*Config, string, bool, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, "", false, err
		}
		resolved = defaultPath
	} else {
		expanded, err := ExpandPath(resolved)
		if err != nil {
			return nil, "", false, err
		}
		resolved = expanded
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := cfg.normalize(); err != nil {
			return nil, resolved, false, err
		}
		return &cfg, resolved, false, nil
	case err != nil:
		return nil, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, resolved, true, err
	}
	return &cfg, resolved, true, nil
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// ExpandPath resolves a leading ~ against the current user's home directory.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty path")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Clean(path), nil
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	return os.WriteFile(target, []byte(sampleConfig), 0o644)
}

// EnsureDirectories creates the asset and state directories. The PipeWire
// conf dir is created lazily by the installer so that status queries do not
// touch it.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.AssetDir, c.Paths.StateDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ConfFilePath returns the absolute path of the installed conf fragment.
func (c *Config) ConfFilePath() string {
	return filepath.Join(c.Paths.ConfDir, ConfFileName)
}

// InstalledAssetPath returns the absolute path of the installed impulse
// response copy. It lives next to the conf dir, not inside it, so PipeWire
// does not try to parse it as configuration.
func (c *Config) InstalledAssetPath() string {
	return filepath.Join(filepath.Dir(c.Paths.ConfDir), InstalledAssetName)
}

// HistoryDBPath returns the sqlite journal location.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Paths.StateDir, HistoryDBName)
}

func (c *Config) normalize() error {
	for _, field := range []*string{&c.Paths.ConfDir, &c.Paths.AssetDir, &c.Paths.StateDir} {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		expanded, err := ExpandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	c.Sink.Intensity = strings.ToLower(strings.TrimSpace(c.Sink.Intensity))
	c.Sink.DisplayName = strings.TrimSpace(c.Sink.DisplayName)
	c.Sink.DeviceID = strings.TrimSpace(c.Sink.DeviceID)
	return nil
}
