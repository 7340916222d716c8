package config

// FileName is the default configuration file, looked up in the working directory.
const FileName = ".apidoc.yml"

// ExpandAll in Config.Expand pre-expands every collapsible section.
const ExpandAll = "*"

// Config is the top-level apidoc configuration, corresponding to .apidoc.yml.
type Config struct {
	Source       string       `yaml:"source" koanf:"source"`
	OutputDir    string       `yaml:"output_dir" koanf:"output_dir"`
	Title        string       `yaml:"title" koanf:"title"`
	TemplatesDir string       `yaml:"templates_dir,omitempty" koanf:"templates_dir"`
	Include      []string     `yaml:"include,omitempty" koanf:"include"`
	Exclude      []string     `yaml:"exclude,omitempty" koanf:"exclude"`
	Expand       []string     `yaml:"expand,omitempty" koanf:"expand"`
	LogLevel     string       `yaml:"log_level" koanf:"log_level"`
	Server       ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for the local preview server.
type ServerConfig struct {
	Port         int  `yaml:"port" koanf:"port"`
	WatchDelayMS int  `yaml:"watch_delay_ms" koanf:"watch_delay_ms"`
	CORSAllowAll bool `yaml:"cors_allow_all" koanf:"cors_allow_all"`
}

// ExpandsAll reports whether every section should start expanded.
func (c *Config) ExpandsAll() bool {
	for _, id := range c.Expand {
		if id == ExpandAll {
			return true
		}
	}
	return false
}
