package icons

// Config holds icon catalogue settings.
type Config struct {
	// Prefix is the storage prefix icons live under.
	Prefix string `mapstructure:"prefix" default:"icons/characters"`
	// Size scales every icon to Size×Size pixels. Zero keeps the stored size.
	Size int `mapstructure:"size" default:"0"`
}
