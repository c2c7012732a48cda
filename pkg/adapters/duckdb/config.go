package duckdb

// Params holds DuckDB-specific session configuration parsed out of a
// connection URI's query string, e.g.
// "duckdb:///data.db?extension=httpfs&extension=json&setting.memory_limit=4GB".
type Params struct {
	// Extensions to install and load (e.g., "httpfs", "spatial", "json")
	Extensions []string

	// Settings to apply at session level (e.g., memory_limit, threads)
	Settings map[string]string

	// Secrets for cloud storage authentication
	Secrets []SecretConfig
}

// SecretConfig defines a DuckDB secret for cloud storage. The adapter does
// not fill Params.Secrets from a connection URI and issues no CREATE SECRET
// statement for them.
type SecretConfig struct {
	// Type: "s3", "gcs", "azure", "r2", "huggingface"
	Type string

	// Provider: "config", "credential_chain", "service_account", etc.
	Provider string

	// Region for S3 buckets
	Region string

	// KeyID for explicit credentials (prefer credential_chain)
	KeyID string

	// Secret for explicit credentials (prefer credential_chain)
	Secret string

	// Endpoint for S3-compatible services (MinIO, etc.)
	Endpoint string
}
