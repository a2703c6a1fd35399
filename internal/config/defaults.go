package config

const (
	defaultConfigPath    = "~/.config/matchreview/config.toml"
	defaultStorePath     = "~/.local/share/matchreview/selections.db"
	defaultExportDir     = "~/Downloads"
	defaultLogPath       = "~/.local/state/matchreview/matchreview.log"
	defaultLogFormat     = "json"
	defaultLogLevel      = "info"
	defaultDoubleClickMS = 300
)

// Environment variables that override file settings.
const (
	EnvStore     = "MATCHREVIEW_STORE"
	EnvCatalog   = "MATCHREVIEW_CATALOG"
	EnvExportDir = "MATCHREVIEW_EXPORT_DIR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Store:  Store{Path: defaultStorePath},
		Export: Export{Dir: defaultExportDir},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Path:   defaultLogPath,
		},
		UI: UI{
			DoubleClickMS: defaultDoubleClickMS,
			Mouse:         true,
		},
	}
}
