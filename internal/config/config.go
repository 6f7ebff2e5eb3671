// Package config handles tool configuration loading and management.
package config

// Config holds all gltftool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds asset output settings.
type OutputConfig struct {
	Format       string `yaml:"format"`        // "gltf" or "glb"
	VertexLayout string `yaml:"vertex_layout"` // "interleaved" or "separate"
	Pretty       bool   `yaml:"pretty"`        // indent JSON output
	Basename     string `yaml:"basename"`      // base name for generated .bin resources
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:       "gltf",
			VertexLayout: "interleaved",
			Pretty:       true,
			Basename:     "buffer",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
