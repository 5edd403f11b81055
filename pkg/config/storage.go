package config

// StorageConfig contains blob store and artifact staging configuration.
type StorageConfig struct {
	// Backend selects the blob store implementation: "s3" or "fs".
	Backend string `yaml:"backend"`

	// S3 settings. Endpoint is optional and enables S3-compatible
	// stores (MinIO); ForcePathStyle must be true for most of them.
	S3Bucket       string `yaml:"s3_bucket"`
	S3Region       string `yaml:"s3_region"`
	S3Endpoint     string `yaml:"s3_endpoint,omitempty"`
	ForcePathStyle bool   `yaml:"force_path_style,omitempty"`

	// ArtifactsBasePath is the local staging directory test programs
	// and the sandbox write into before upload.
	ArtifactsBasePath string `yaml:"artifacts_base_path"`

	// FSRoot is the blob root when Backend is "fs".
	FSRoot string `yaml:"fs_root,omitempty"`

	// IgnoreGlobs are doublestar patterns excluded from the artifact
	// sweep (browser profile litter, temp files).
	IgnoreGlobs []string `yaml:"ignore_globs"`
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Backend:           "s3",
		S3Region:          "us-east-1",
		ArtifactsBasePath: "/tmp/conductor-artifacts",
		IgnoreGlobs: []string{
			"**/chrome-profile/**",
			"**/*.tmp",
			"**/.DS_Store",
		},
	}
}
