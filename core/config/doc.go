// Package config loads the application configuration.
//
// Settings come from environment variables, optionally seeded from a .env
// file, and fall back to the `default` struct tags of each section:
//   - Server: HTTP port, API key, body limit
//   - Storage: S3/MinIO credentials and the bucket holding equip icons
//   - Log: level and format
//   - Database: lock store driver (sqlite or mysql) and connection
//   - Relic: fuzzy name correction mode and export directory
//   - Icons: storage prefix and icon size
//
// Nested keys map to upper-case environment names with underscores, so
// relic.classify.fuzzy_mode is read from RELIC_CLASSIFY_FUZZY_MODE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
