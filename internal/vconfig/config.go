// Package vconfig provides configuration management for the vvsql CLI and
// HTTP server.
//
// Unlike a project-oriented tool, vvsql has no models directory, targets, or
// environments to infer a project root from — a query names its own reader
// and writer connection URIs. The config layer only supplies defaults for
// values a caller would otherwise have to repeat on every invocation: the
// default reader/writer connection URI, the HTTP bind address, and the CORS
// allowed origin.
package vconfig

// Config holds vvsql's runtime configuration.
type Config struct {
	// Reader is the default connection URI used when a query's data prefix
	// names no explicit reader (bare "SELECT ..." with no FROM-clause
	// override). Empty falls back to "duckdb://memory".
	Reader string `koanf:"reader"`

	// Writer is the default connection URI used for statements that write
	// results back to a store, when the query names none itself.
	Writer string `koanf:"writer"`

	// HTTPAddr is the address the HTTP API binds to, e.g. ":8080".
	HTTPAddr string `koanf:"http_addr"`

	// CORSOrigin is the single allowed CORS origin for the HTTP API.
	// "*" allows any origin.
	CORSOrigin string `koanf:"cors_origin"`

	// Verbose enables debug-level logging.
	Verbose bool `koanf:"verbose"`

	// OutputFormat is the default CLI render format ("json" or "human").
	// Bound to the --format flag; kept distinct from --output, which names a
	// file path rather than a format.
	OutputFormat string `koanf:"format"`

	// Preload names a directory of CSV/Parquet/JSON files to load as tables
	// (spec.md §6) before the first query runs, keyed by file stem.
	Preload string `koanf:"preload"`
}

// Default configuration values.
const (
	DefaultHTTPAddr   = ":8080"
	DefaultCORSOrigin = "*"
	DefaultOutput     = "human"
)

// configFileNames are the config file names looked for in the current
// working directory when no explicit --config path is given, in order.
var configFileNames = []string{"vvsql.yaml", "vvsql.yml"}

// Defaults returns a Config populated with vvsql's built-in defaults, before
// any file, environment, or flag overrides are layered on.
func Defaults() *Config {
	return &Config{
		HTTPAddr:     DefaultHTTPAddr,
		CORSOrigin:   DefaultCORSOrigin,
		OutputFormat: DefaultOutput,
	}
}
