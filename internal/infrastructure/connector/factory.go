package connector

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/documents"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
)

// NewDocumentConnector returns the document storage selected by settings.Type
func NewDocumentConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (documents.DocumentConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.LocalStorageType:
		return NewLocalDocumentConnector(settings.LocalRoot, logger)
	case config.S3StorageType:
		return NewS3DocumentConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", settings.Type)
	}
}
