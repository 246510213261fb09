package config

const (
	// DefaultConfigName is the configuration file looked up in the working
	// directory when no path is given.
	DefaultConfigName = "config.toml"

	defaultLogFormat = "console"
	defaultLogLevel  = "warn"
)

// Default returns a Config populated with repository defaults. It carries no
// rules; those always come from the file.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
