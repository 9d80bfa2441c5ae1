package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
	// File is an extra sink that receives every line while debugging.
	// Leave empty to log to stderr only.
	File string `mapstructure:"file" default:""`
}
