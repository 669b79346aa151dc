package config

const (
	defaultConfigPath  = "~/.config/spatial/config.toml"
	defaultConfDir     = "~/.config/pipewire/pipewire.conf.d"
	defaultAssetDir    = "~/.local/share/spatial/ir"
	defaultStateDir    = "~/.local/state/spatial"
	defaultIntensity   = "medium"
	defaultDisplayName = "Spatial Audio"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ConfDir:  defaultConfDir,
			AssetDir: defaultAssetDir,
			StateDir: defaultStateDir,
		},
		Sink: Sink{
			Intensity:   defaultIntensity,
			DisplayName: defaultDisplayName,
		},
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}
