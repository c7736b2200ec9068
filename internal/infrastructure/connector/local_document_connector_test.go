//go:build unit
// +build unit

package connector

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalConnector(t *testing.T) *localDocumentConnector {
	t.Helper()
	c, err := NewLocalDocumentConnector(t.TempDir(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return c.(*localDocumentConnector)
}

func TestLocalDocumentConnector_RoundTrip(t *testing.T) {
	c := newLocalConnector(t)
	ctx := context.Background()
	content := []byte("passport scan")

	err := c.Upload(ctx, "applications/a-1/passport.pdf", bytes.NewReader(content), int64(len(content)), "application/pdf")
	require.NoError(t, err)

	rc, err := c.Download(ctx, "applications/a-1/passport.pdf")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, c.Delete(ctx, "applications/a-1/passport.pdf"))
	_, err = c.Download(ctx, "applications/a-1/passport.pdf")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLocalDocumentConnector_SizeMismatch(t *testing.T) {
	c := newLocalConnector(t)
	ctx := context.Background()

	err := c.Upload(ctx, "short.txt", bytes.NewReader([]byte("abc")), 10, "text/plain")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = c.Download(ctx, "short.txt")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLocalDocumentConnector_RejectsEscapingKeys(t *testing.T) {
	c := newLocalConnector(t)
	ctx := context.Background()

	err := c.Upload(ctx, "../outside.txt", bytes.NewReader([]byte("x")), 1, "text/plain")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = c.Download(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLocalDocumentConnector_DeleteMissing(t *testing.T) {
	c := newLocalConnector(t)
	assert.NoError(t, c.Delete(context.Background(), "never/uploaded.png"))
}

func TestNewDocumentConnector_Factory(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	ctx := context.Background()

	conn, err := NewDocumentConnector(ctx, &config.StorageSettings{
		Type:      config.LocalStorageType,
		LocalRoot: t.TempDir(),
		MaxSizeMB: 5,
	}, log)
	require.NoError(t, err)
	assert.IsType(t, &localDocumentConnector{}, conn)

	_, err = NewDocumentConnector(ctx, &config.StorageSettings{Type: config.LocalStorageType, MaxSizeMB: 5}, log)
	assert.Error(t, err)

	_, err = NewDocumentConnector(ctx, &config.StorageSettings{Type: "ftp", MaxSizeMB: 5}, log)
	assert.Error(t, err)
}
