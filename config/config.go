package config

import "os"

// Config holds the fixed settings of a schema export.
type Config struct {
	// OutputPath is resolved against the working directory when relative.
	OutputPath string
	Perm       os.FileMode
}

// DefaultOutputPath is the file name GraphDoc-style tools are pointed at.
const DefaultOutputPath = "graphql.schema.json"

func Default() *Config {
	return &Config{
		OutputPath: DefaultOutputPath,
		Perm:       0o644,
	}
}
