package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding, json or console.
	Format string `mapstructure:"format" default:"json"`
	// Output is where log lines go: stderr, stdout or a file path.
	Output string `mapstructure:"output" default:"stderr"`
}
