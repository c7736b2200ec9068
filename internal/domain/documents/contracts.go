// Package documents declares the object storage used for files attached to
// service applications (passport scans, photos, certificates).
package documents

import (
	"context"
	"io"
)

// DocumentConnector is an interface for interacting with document storage.
// Keys are opaque slash separated paths chosen by the caller.
type DocumentConnector interface {
	// Upload stores size bytes read from r under key.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Download opens the object stored under key. The caller closes the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}
