package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StorageSettings configures where uploaded application documents are kept
type StorageSettings struct {
	Type       string `mapstructure:"type" validate:"required,oneof=local s3"`
	LocalRoot  string `mapstructure:"local_root"`
	S3Bucket   string `mapstructure:"s3_bucket"`
	S3Region   string `mapstructure:"s3_region"`
	S3Endpoint string `mapstructure:"s3_endpoint"`
	PathStyle  bool   `mapstructure:"path_style"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"required,min=1,max=100"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	switch s.Type {
	case LocalStorageType:
		if s.LocalRoot == "" {
			return fmt.Errorf("local root is required for local storage")
		}
	case S3StorageType:
		if s.S3Bucket == "" {
			return fmt.Errorf("bucket is required for s3 storage")
		}
	}

	return nil
}
