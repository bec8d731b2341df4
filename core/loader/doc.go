// Package loader registers and loads the application's features.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order. LoadAll skips disabled
// features (for example locks without a database, or icons without object
// storage) and stops at the first feature that fails to load.
package loader
