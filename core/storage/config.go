package storage

// Config holds the S3/MinIO connection used for equip icons.
type Config struct {
	// Endpoint is host:port, optionally with an http:// or https:// scheme.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS for scheme-less endpoints.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the icon objects. It is created on startup when missing.
	Bucket string `mapstructure:"bucket" default:"relics"`
	// Region is used when the bucket has to be created.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
