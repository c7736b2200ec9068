package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/documents"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
)

// localDocumentConnector keeps application documents below a root directory
type localDocumentConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalDocumentConnector creates the root directory if needed and returns a connector rooted there
func NewLocalDocumentConnector(root string, logger logger.Logger) (documents.DocumentConnector, error) {
	if root == "" {
		return nil, fmt.Errorf("local storage root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &localDocumentConnector{root: abs, logger: logger}, nil
}

// path maps key below root and rejects keys escaping it
func (c *localDocumentConnector) path(key string) (string, error) {
	if key == "" {
		return "", apperr.Invalidf("document key is empty")
	}
	p := filepath.Join(c.root, filepath.FromSlash(key))
	if p != c.root && !strings.HasPrefix(p, c.root+string(filepath.Separator)) {
		return "", apperr.Invalidf("document key %q escapes storage root", key)
	}
	return p, nil
}

// Upload writes the document to a temporary file and renames it into place
func (c *localDocumentConnector) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create document %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	if size >= 0 && written != size {
		return apperr.Invalidf("document %s: expected %d bytes, got %d", key, size, written)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("failed to store document %s: %w", key, err)
	}

	c.logger.Info("Uploaded document ", key)
	return nil
}

// Download opens the document stored under key
func (c *localDocumentConnector) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := c.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFoundf("document %s", key)
		}
		return nil, fmt.Errorf("failed to open document %s: %w", key, err)
	}
	return f, nil
}

// Delete removes the document; a missing file is not an error
func (c *localDocumentConnector) Delete(ctx context.Context, key string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}

	c.logger.Info("Deleted document ", key)
	return nil
}
