package config

const (
	defaultConfigPath     = "~/.config/spdxdiff/config.toml"
	projectConfigFile     = "spdxdiff.toml"
	defaultCatalogURL     = "https://raw.githubusercontent.com/spdx/license-list-data/master/json/licenses.json"
	defaultTextBaseURL    = "https://raw.githubusercontent.com/spdx/license-list-data/master/text"
	defaultCacheDir       = "licenses_texts"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultTimeoutSeconds = 0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		SPDX: SPDX{
			CatalogURL:     defaultCatalogURL,
			TextBaseURL:    defaultTextBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Cache: Cache{
			Dir: defaultCacheDir,
		},
		Report: Report{
			Include: []string{},
			Color:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
