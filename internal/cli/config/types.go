// Package config provides configuration management for the clippygen CLI.
//
// Values are merged from four sources in increasing precedence: built-in
// defaults, a clippygen.yaml file, CLIPPYGEN_* environment variables, and
// command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Profile     string `koanf:"profile"`
	Workspace   bool   `koanf:"workspace"`
	CatalogURL  string `koanf:"catalog_url"`
	CatalogFile string `koanf:"catalog_file"`
	Timeout     int    `koanf:"timeout"` // seconds
	Verbose     bool   `koanf:"verbose"`
	Format      string `koanf:"format"` // listing output format: text, json
}

// Default configuration values.
const (
	DefaultCatalogURL = "https://rust-lang.github.io/rust-clippy/stable/lints.json"
	DefaultTimeout    = 30
	DefaultFormat     = "text"
)
