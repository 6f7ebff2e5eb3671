package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagFormat  = flag.String("format", "", "Output format: gltf or glb")
	flagLayout  = flag.String("layout", "", "Vertex layout: interleaved or separate")
	flagCompact = flag.Bool("compact", false, "Write compact JSON without indentation")
	flagLogFile = flag.String("log-file", "", "Write logs to file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagLayout != "" {
		cfg.Output.VertexLayout = *flagLayout
	}
	if *flagCompact {
		cfg.Output.Pretty = false
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
