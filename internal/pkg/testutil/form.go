package testutil

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// FormFile is one file part of a multipart request body
type FormFile struct {
	Field       string
	FileName    string
	ContentType string
	Content     []byte
}

// CreateMultipartBody builds a multipart/form-data body with the given files and plain fields.
// It returns the body and the Content-Type header value carrying the boundary.
func CreateMultipartBody(t *testing.T, files []FormFile, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.FileName+`"`)
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// CreateEmptyMultipartBody builds a multipart body without any parts
func CreateEmptyMultipartBody(t *testing.T) (*bytes.Buffer, string) {
	return CreateMultipartBody(t, nil, nil)
}
