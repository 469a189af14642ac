package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOut     = flag.String("out", "", "Output directory")
	flagFormat  = flag.String("format", "", "Output format (obj, ply, ply-binary)")
	flagWorkers = flag.Int("workers", 0, "Number of concurrent workers")
	flagWeld    = flag.Bool("weld-seams", false, "Share normals across closed seams")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseArgs parses the given arguments instead of os.Args, for subcommands.
func ParseArgs(args []string) error {
	return flag.CommandLine.Parse(args)
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
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagWorkers > 0 {
		cfg.Generation.Workers = *flagWorkers
	}
	if *flagWeld {
		cfg.Generation.WeldSeams = true
	}
}
