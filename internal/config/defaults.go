package config

// DefaultSources are the documentation source locations probed, in order,
// when no source is configured.
var DefaultSources = []string{
	"api.json",
	"api.yaml",
	"api.yml",
	"docs/api/api.json",
	"docs/api/js/*_api.js",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:    "api.json",
		OutputDir: "site",
		Title:     "API Documentation",
		LogLevel:  "info",
		Server: ServerConfig{
			Port:         8080,
			WatchDelayMS: 300,
		},
	}
}
